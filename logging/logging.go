// Package logging configures the standard logger of the scatter commands.
package logging

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "scatter"

// Setup sends the standard logger to file. Logs are discarded when file is
// empty. The returned function closes the file.
func Setup(file string) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if file == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// SetupTerminal is Setup for the terminal program. Logs are written with the
// bubbletea logger so they never end up on the screen.
func SetupTerminal(file string) (func(), error) {
	if file == "" {
		return Setup(file)
	}
	f, err := tea.LogToFile(file, prefix)
	if err != nil {
		return nil, err
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return func() { f.Close() }, nil
}

// Stderr sends the logs of a long running server to the standard error when
// no file is given.
func Stderr(file string) (func(), error) {
	if file != "" {
		return Setup(file)
	}
	log.SetFlags(log.LstdFlags)
	log.SetOutput(os.Stderr)
	return func() {}, nil
}

package web

import (
	"html/template"
	"io"

	"github.com/midbel/scatter"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; }
#scatter [id^="label-"] { cursor: pointer; }
#tooltip { position: absolute; display: none; padding: 6px; background: #333; color: #fff; border-radius: 4px; font-size: 12px; pointer-events: none; }
</style>
</head>
<body>
<div id="scatter" data-x="{{.X}}" data-y="{{.Y}}">{{.Frame}}</div>
<div id="tooltip"></div>
<p><a href="/export.png" download="scatter.png">export</a></p>
<script>
const chart = document.getElementById("scatter");
const tip = document.getElementById("tooltip");
let until = 0;

async function frame() {
	const res = await fetch("/chart.svg");
	chart.innerHTML = await res.text();
	if (res.headers.get("X-Moving") === "true" || Date.now() < until) {
		requestAnimationFrame(frame);
	}
}

chart.addEventListener("click", async (e) => {
	const label = e.target.closest("[id^='label-']");
	if (!label) {
		return;
	}
	const axis = label.parentNode.id === "x-labels" ? "x" : "y";
	const field = label.id.slice("label-".length);
	const res = await fetch("/select?axis=" + axis + "&field=" + encodeURIComponent(field), {method: "POST"});
	if (!res.ok) {
		return;
	}
	const sel = await res.json();
	if (sel.changed) {
		until = Date.now() + sel.until;
		frame();
	}
});

chart.addEventListener("mouseover", async (e) => {
	const marker = e.target.closest("[id^='marker-']");
	if (!marker) {
		return;
	}
	const res = await fetch("/tooltip?index=" + marker.id.slice("marker-".length));
	if (!res.ok) {
		return;
	}
	tip.innerHTML = await res.text();
	tip.style.left = (e.pageX + 10) + "px";
	tip.style.top = (e.pageY - 30) + "px";
	tip.style.display = "block";
});

chart.addEventListener("mouseout", (e) => {
	if (e.target.closest("[id^='marker-']")) {
		tip.style.display = "none";
	}
});

async function resize() {
	const res = await fetch("/resize?width=" + window.innerWidth + "&height=" + window.innerHeight, {method: "POST"});
	if (res.ok) {
		frame();
	}
}

let resizing;
window.addEventListener("resize", () => {
	clearTimeout(resizing);
	resizing = setTimeout(resize, 200);
});
resize();
</script>
</body>
</html>
`))

type pageData struct {
	Title string
	X     string
	Y     string
	Frame template.HTML
}

func renderPage(w io.Writer, sel scatter.Selection, frame string) error {
	data := pageData{
		Title: sel.X.Label() + " vs " + sel.Y.Label(),
		X:     sel.X.String(),
		Y:     sel.Y.String(),
		Frame: template.HTML(frame),
	}
	return page.Execute(w, data)
}

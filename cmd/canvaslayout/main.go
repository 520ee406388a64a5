// Command canvaslayout lays out a graph read from stdin and writes the
// positioned graph to stdout.
//
//	canvaslayout -layout hierarchical < flow.json > positioned.json
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/agentgrid/canvas-engine/canvas"
	"github.com/agentgrid/canvas-engine/layout"
)

type document struct {
	Nodes []canvas.Node `json:"nodes"`
	Edges []canvas.Edge `json:"edges"`
}

func main() {
	layoutType := flag.String("layout", "", "layout type (sequential, parallel, hierarchical, hybrid, circular); detected when empty")
	arrange := flag.Bool("arrange", false, "run collision de-overlap after layout")
	width := flag.Float64("width", 1600, "canvas width")
	height := flag.Float64("height", 1200, "canvas height")
	flag.Parse()

	var doc document
	if err := json.NewDecoder(os.Stdin).Decode(&doc); err != nil {
		log.Fatal(err)
	}

	t := layout.Type(*layoutType)
	if t == "" {
		t = layout.Detect(doc.Nodes, doc.Edges)
	}

	var e layout.Engine
	doc.Nodes = e.Apply(doc.Nodes, doc.Edges, t)
	if *arrange {
		doc.Nodes = canvas.AutoArrange(doc.Nodes, canvas.Bounds{W: *width, H: *height})
	}
	doc.Edges = layout.RouteEdges(doc.Edges, doc.Nodes)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		log.Fatal(err)
	}
}

// behaviorgen turns a YAML or JSON behavior definition into a Havok
// behavior packfile.
//
//	behaviorgen -f door.yml -o meshes\door\doorBehavior.xml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hkbtools/behaviorx"
)

func main() {
	defPath := flag.String("f", "", "behavior definition file (.yml, .yaml or .json)")
	outPath := flag.String("o", "behavior.xml", "output packfile path")
	dot := flag.Bool("dot", false, "print Graphviz DOT instead of writing the packfile")
	flag.Parse()

	if *defPath == "" {
		fmt.Fprintln(os.Stderr, "behaviorgen: -f is required")
		flag.Usage()
		os.Exit(2)
	}

	def, err := behaviorx.LoadDefinition(*defPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "behaviorgen: %v\n", err)
		os.Exit(1)
	}
	graph, err := def.Graph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "behaviorgen: %v\n", err)
		os.Exit(1)
	}

	if *dot {
		fmt.Print(graph.DOT())
		return
	}
	if err := graph.Export(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "behaviorgen: %v\n", err)
		os.Exit(1)
	}
}

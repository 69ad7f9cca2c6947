// Command graphstat loads a graph from the text or YAML format and reports
// structural statistics, paths, components, betweenness and cliques. It can
// also generate synthetic graphs in the same formats.
//
//	graphstat summary net.txt
//	graphstat path --all net.txt a d
//	graphstat betweenness --directed --top 5 net.txt
//	graphstat export --format yaml net.txt > net.yaml
//	graphstat generate random 50 --p 0.1 --seed 1 > rnd.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "graphstat:", err)
		os.Exit(1)
	}
}

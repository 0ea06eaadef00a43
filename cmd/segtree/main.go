// Binary segtree replays and verifies segment tree workloads.
package main

import "github.com/AlexWan0/go-segtree/internal/cli"

func main() {
	cli.Main()
}

// Command huffpack compresses and decompresses files with static Huffman coding.
//
//	huffpack -c input.txt output.huff
//	huffpack -d output.huff restored.txt
package main

import (
	"os"

	"github.com/arloliu/huffpack/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}

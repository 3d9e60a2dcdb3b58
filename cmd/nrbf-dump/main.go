// Command nrbf-dump decodes a .NET Binary Format payload and prints its
// projected value tree as a YAML document. It is file/UI glue around the
// nrbf decode library, not part of the library itself.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jasperfirecai2/ngu-decoder/nrbf"
	"github.com/jasperfirecai2/ngu-decoder/nrbf/dump"
)

func main() {
	var (
		inputPath string
		color     bool
		style     string
	)
	flag.StringVarP(&inputPath, "input", "i", "", "path to a raw NRBF payload")
	flag.BoolVar(&color, "color", false, "syntax-highlight the YAML output")
	flag.StringVar(&style, "style", "monokai", "chroma style used with --color")
	flag.Parse()

	if inputPath == "" {
		log.Fatalln("missing required flag: -i/--input")
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalln("read input:", err)
	}

	v, err := nrbf.Deserialize(data)
	if err != nil {
		switch {
		case errors.Is(err, nrbf.ErrInvalidHeader):
			log.Fatalln("not a valid NRBF stream:", err)
		case errors.Is(err, nrbf.ErrNoRoot):
			log.Fatalln("stream has no root object:", err)
		default:
			log.Fatalln("decode:", err)
		}
	}

	doc, err := dump.YAML(v)
	if err != nil {
		log.Fatalln("render:", err)
	}

	fmt.Println(dump.Title(inputPath))
	if color {
		highlighted, err := dump.Highlight(doc, style)
		if err != nil {
			log.Fatalln("highlight:", err)
		}
		fmt.Print(highlighted)
		return
	}
	os.Stdout.Write(doc)
}

// This tool reads a PDF file and prints the text it extracts, one line
// per Text element, with blank lines at line/column breaks and a form
// feed at the start of each page.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gopdftext/pdftext"
	"github.com/gopdftext/pdftext/pdfcontent"
)

func check(err error) {
	if err != nil {
		fmt.Println("fatal error", err)
		os.Exit(1)
	}
}

func main() {
	password := flag.String("password", "", "user password, if the document is encrypted")
	flag.Parse()
	input := flag.Arg(0)
	if input == "" {
		fmt.Println("usage: extract [-password PW] file.pdf")
		os.Exit(1)
	}

	doc, err := pdftext.OpenFile(input, &pdftext.Options{Password: *password})
	check(err)

	els, err := doc.ExtractText()
	check(err)

	for _, el := range els {
		switch v := el.(type) {
		case pdfcontent.NewPage:
			fmt.Print("\f")
		case pdfcontent.NewText:
			fmt.Println()
		case pdfcontent.Text:
			fmt.Println(v.S)
		}
	}
}

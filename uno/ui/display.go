package ui

import (
	"fmt"
	"strings"

	"github.com/unoflip/server/uno/card/colour"
)

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(colour.Stdout, args...)
}

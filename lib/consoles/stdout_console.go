package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abiosoft/lineprefix"
)

type stdoutConsole struct {
	out      io.Writer
	prefixes []string
}

func NewStdOutConsole() Console {
	c := &stdoutConsole{}

	c.out = lineprefix.New(
		lineprefix.Writer(os.Stdout),
		lineprefix.PrefixFunc(func() string {
			return c.Prepare("")
		}),
	)

	return c
}

func (o *stdoutConsole) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

func (o *stdoutConsole) Prepare(format string, a ...any) string {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("]")
	for _, prefix := range o.prefixes {
		builder.WriteString(" ")
		builder.WriteString(prefix)
	}
	if format != "" {
		builder.WriteString(" ")
		builder.WriteString(fmt.Sprintf(format, a...))
	}
	return builder.String()
}

func (o *stdoutConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *stdoutConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphprint/config"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35
	colorBold    = 1
	colorGray    = 90
)

func colorize(s any, c int, noColor bool) string {
	if noColor {
		return fmt.Sprintf("%s", s)
	}

	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// isTerminal reports whether w is a terminal; color is only worth emitting there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// levelFor maps a configured level name to zerolog.
func levelFor(name string) zerolog.Level {
	switch name {
	case config.LevelTrace:
		return zerolog.TraceLevel
	case config.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// newLogger returns a console logger: time-only timestamps, short caller,
// boxed levels.
func newLogger(w io.Writer, level string, noColor bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: noColor}
	cw.FormatCaller = func(i any) string {
		c, _ := i.(string)
		if c == "" {
			return c
		}

		return colorize(c, colorGray, noColor)
	}
	cw.FormatLevel = func(i any) string {
		l, _ := i.(string)
		switch l {
		case zerolog.LevelTraceValue:
			return colorize("| TRACE |", colorMagenta, noColor)
		case zerolog.LevelDebugValue:
			return colorize("| DEBUG |", colorYellow, noColor)
		case zerolog.LevelInfoValue:
			return colorize("| INFO  |", colorGreen, noColor)
		case zerolog.LevelWarnValue:
			return colorize("| WARN  |", colorRed, noColor)
		case "":
			return colorize("| ??? |", colorBold, noColor)
		default:
			return colorize(colorize("| "+strings.ToUpper(l)+" |", colorRed, noColor), colorBold, noColor)
		}
	}
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.CallerFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}

	return zerolog.New(cw).Level(levelFor(level)).With().Timestamp().Caller().Logger()
}

// shortCaller trims caller paths to file:line.
func shortCaller(_ uintptr, file string, line int) string {
	if k := strings.LastIndexByte(file, '/'); k >= 0 {
		file = file[k+1:]
	}

	return file + ":" + strconv.Itoa(line)
}

func init() {
	zerolog.CallerMarshalFunc = shortCaller
}

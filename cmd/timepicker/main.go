// timepicker is a terminal time picker whose reels follow the locale's
// time format.
//
// Usage:
//
//	timepicker                         # system locale, local time
//	timepicker --locale ko-KR          # AM/PM reel first
//	timepicker --locale en-GB --tz Europe/London --time 13:05:09
//	timepicker locales                 # list built-in locale formats
//
// The selected time is printed in RFC 3339 form on exit.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package pathdata parses SVG path data text into normalized commands.
//
// Parsing is a chain of lazy stages, each an iterator consuming the previous one:
//
//	Tokenize -> Group -> Ungroup -> PackArcFlags
//
// Tokenize splits the text into command letters and number literals. Group
// collects the numbers following each command letter. Ungroup expands the
// implicit repetition shorthand ("L10 10 20 20" is two line commands) and checks
// every command's argument count. PackArcFlags moves the large-arc and sweep
// flags of arc commands out of the value list and into Command.Flags.
//
// The first error aborts the chain: it is yielded once and nothing follows it.
// A consumer that stops ranging early stops every upstream stage as well.
//
//	for cmd, err := range pathdata.Parse("M0 0 L10 10 20 20 Z") {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(cmd)
//	}
package pathdata

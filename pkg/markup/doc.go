// Package markup parses XML-like tagged text into richstr trees, e.g.
//
//	n, err := markup.Parse("plain <Fore.red>red <Decor.italic>and italic</Decor.italic></Fore.red>")
//
// Tags name a group and one of its styles; see Parser for the accepted forms.
package markup

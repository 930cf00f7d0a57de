//go:build js && wasm
// +build js,wasm

package harness

import (
	"log"
	"syscall/js"
)

// DOMReporter mirrors harness events into the page: the description and
// each result become elements under a results container, and the final
// summary is published as window.conformanceResult for automation.
type DOMReporter struct {
	document js.Value
	results  js.Value
}

// NewDOMReporter reports under the element matching selector, creating a
// results <div> in the body if nothing matches.
func NewDOMReporter(document js.Value, selector string) *DOMReporter {
	var results js.Value
	if selector != "" {
		results = document.Call("querySelector", selector)
	}
	if !results.Truthy() {
		results = document.Call("createElement", "div")
		results.Set("id", "results")
		document.Get("body").Call("appendChild", results)
	}
	return &DOMReporter{document: document, results: results}
}

func (dr *DOMReporter) line(class, text string) {
	el := dr.document.Call("createElement", "div")
	el.Set("className", class)
	el.Set("innerText", text)
	dr.results.Call("appendChild", el)
	log.Print(text)
}

// Describe shows the case description.
func (dr *DOMReporter) Describe(desc string) { dr.line("description", desc) }

// Report shows an assertion result.
func (dr *DOMReporter) Report(res Result) {
	if res.Pass {
		dr.line("pass", res.String())
	} else {
		dr.line("fail", res.String())
	}
}

// Finished shows and publishes the summary.
func (dr *DOMReporter) Finished(sum Summary) {
	dr.line("summary", "TEST COMPLETE "+sum.String())
	js.Global().Set("conformanceResult", map[string]interface{}{
		"description": sum.Description,
		"passed":      sum.Passed,
		"failed":      sum.Failed,
		"ok":          sum.OK(),
	})
}

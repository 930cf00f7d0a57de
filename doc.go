/*
Command servo runs the WebGL conformance case checking that a 2D canvas used
as a texImage2D source can be drawn into and uploaded again.

By default it serves the case to a browser: the module root is built as a
js/wasm program on demand and hosted at /main.wasm, alongside /wasm_exec.js
from $GOROOT, a runner page at / with its /index.js script, and the test
images under /resources/. The page reports each assertion and publishes the
final summary as window.conformanceResult.

The runner script passes its data-* attributes to the program as environment
variables:

	<script src="index.js"
		data-results="#results"
		data-image="../../../resources/blue-1x1.jpg"
		data-timeout="10s"
		data-tolerance="2"></script>

With -headless the case runs natively against a software model of a 2D
canvas and a WebGL context, logging one line per assertion and exiting
non-zero unless it passed:

	servo -headless
	servo -headless -resources ./site -image ../../../resources/blue-1x1.png

Images are generated in memory unless -resources names a directory holding a
resources/ tree; -gen-resources writes the generated set to disk:

	servo -gen-resources ./site

The -gen flag prints a standalone server main for another wasm package:

	servo -gen example.com/some/wasm/package > serve.go
*/
package main

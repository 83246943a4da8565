package output

import (
	"io"
	"strconv"

	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/sweep"
	"github.com/beevik/etree"
)

// writeXML renders outcomes as
//
//	<sweeps>
//	  <sequence index="0" values="5 3 4 1 2" operations="3">
//	    <pass number="1">1 2</pass>
//	  </sequence>
//	</sweeps>
func writeXML(w io.Writer, outcomes []sweep.Outcome, mode Mode) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("sweeps")

	for _, o := range outcomes {
		el := root.CreateElement("sequence")
		el.CreateAttr("index", strconv.Itoa(o.Index))
		el.CreateAttr("values", joinInts(o.Sequence, " "))

		if o.Err != nil {
			errEl := el.CreateElement("error")
			errEl.CreateAttr("code", string(errors.GetErrorCode(o.Err)))
			errEl.SetText(o.Err.Error())
			continue
		}

		el.CreateAttr("operations", strconv.Itoa(o.Result.Operations))
		if mode == ModeTrace {
			for _, p := range o.Result.Passes {
				passEl := el.CreateElement("pass")
				passEl.CreateAttr("number", strconv.Itoa(p.Number))
				passEl.SetText(joinInts(p.Collected, " "))
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

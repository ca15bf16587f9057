package errors

import (
	"strconv"

	"github.com/tidwall/sjson"
)

// ToJSON renders the report as a JSON array of {message, line, column, node}
// objects, for callers that want machine-readable diagnostics instead of the
// caret-annotated text format.
func (r *Report) ToJSON() (string, error) {
	doc := "[]"
	var err error
	for i, e := range r.Errors {
		pos := e.pos()
		prefix := strconv.Itoa(i)
		doc, err = sjson.Set(doc, prefix+".message", e.Message)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, prefix+".line", pos.Line)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, prefix+".column", pos.Column)
		if err != nil {
			return "", err
		}
		if e.Node != nil {
			doc, err = sjson.Set(doc, prefix+".node", e.Node.Kind().String())
			if err != nil {
				return "", err
			}
		}
	}
	return doc, nil
}

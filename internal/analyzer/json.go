package analyzer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dgallion1/outliner/internal/outline"
)

// JSONAnalyzer projects a JSON document directly into an outline: object
// keys and array indices become nodes, depth follows nesting. No inference;
// a document that fails to parse is fatal.
type JSONAnalyzer struct{}

func (a *JSONAnalyzer) Formats() []string {
	return []string{"json"}
}

func (a *JSONAnalyzer) Analyze(content []byte, opts outline.Options) ([]*outline.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var elems []outline.Element
	if err := walkJSONValue(dec, "", 0, &elems); err != nil {
		return nil, &MalformedInputError{Format: "json", Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &MalformedInputError{Format: "json", Err: fmt.Errorf("trailing content after document")}
	}

	return outline.Assemble(elems, opts), nil
}

// walkJSONValue consumes one JSON value from the token stream, emitting an
// element for it (unless it is the unnamed root container) and recursing
// into containers. Token order preserves document order.
func walkJSONValue(dec *json.Decoder, name string, depth int, elems *[]outline.Element) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	emit := func(kind string) {
		if name == "" {
			return
		}
		*elems = append(*elems, outline.Element{Name: name, Kind: kind, Depth: depth})
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			emit("object")
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := keyTok.(string)
				if !ok {
					return fmt.Errorf("object key is not a string")
				}
				if err := walkJSONValue(dec, key, depth+1, elems); err != nil {
					return err
				}
			}
			_, err = dec.Token() // closing brace
			return err
		case '[':
			emit("array")
			for i := 0; dec.More(); i++ {
				if err := walkJSONValue(dec, fmt.Sprintf("[%d]", i), depth+1, elems); err != nil {
					return err
				}
			}
			_, err = dec.Token() // closing bracket
			return err
		}
		return fmt.Errorf("unexpected delimiter %v", t)
	case string:
		emit("string")
	case json.Number:
		emit("number")
	case bool:
		emit("boolean")
	case nil:
		emit("null")
	}
	return nil
}

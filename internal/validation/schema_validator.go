// Package validation checks world data files against the JSON schemas
// shipped in configs/schemas.
package validation

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against a named schema
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaPath string) error
}

// Error lists every schema violation found in one document
type Error struct {
	Schema   string
	Problems []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Schema, strings.Join(e.Problems, "; "))
}

type validator struct {
	fsys fs.FS

	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidatorFS reads schemas from fsys, typically configs.Schemas.
// Compiled schemas are cached per path.
func NewSchemaValidatorFS(fsys fs.FS) SchemaValidator {
	return &validator{
		fsys:     fsys,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateBytes returns *Error when data parses but violates the schema
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return err
	}

	// UnmarshalJSON keeps numbers exact so integer keywords work
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf(ErrMsgParseData, err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	out := &Error{Schema: schemaPath}
	collect(verr, &out.Problems)
	return out
}

func (v *validator) schema(path string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[path]; ok {
		return s, nil
	}

	raw, err := fs.ReadFile(v.fsys, path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSchema, path, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseSchema, path, err)
	}
	if err := v.compiler.AddResource(path, doc); err != nil {
		return nil, fmt.Errorf(ErrMsgCompileSchema, path, err)
	}
	s, err := v.compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCompileSchema, path, err)
	}

	v.schemas[path] = s
	return s, nil
}

// collect flattens the cause tree into "at <pointer>: <keyword>" lines.
// Only leaves are reported; parents just repeat their children.
func collect(err *jsonschema.ValidationError, out *[]string) {
	if len(err.Causes) > 0 {
		for _, c := range err.Causes {
			collect(c, out)
		}
		return
	}

	at := "/" + strings.Join(err.InstanceLocation, "/")
	keyword := "schema"
	if err.ErrorKind != nil {
		if kp := err.ErrorKind.KeywordPath(); len(kp) > 0 {
			keyword = strings.Join(kp, ".")
		}
	}
	*out = append(*out, fmt.Sprintf("at %s: %s", at, keyword))
}

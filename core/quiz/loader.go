package quiz

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type bankFile struct {
	Questions []Question `yaml:"questions"`
}

// LoadBankFile reads and validates a YAML question bank:
//
//	questions:
//	  - id: 1
//	    question: "..."
//	    options: ["a", "b"]
//	    correct_answers: [0]
//	    type: single
func LoadBankFile(path string) (Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening question bank")
	}
	defer func() { _ = f.Close() }()

	var bf bankFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&bf); err != nil {
		return nil, errors.Wrap(err, "decoding question bank")
	}
	bank, err := NewBank(bf.Questions)
	if err != nil {
		return nil, errors.Wrap(err, "validating question bank")
	}
	return bank, nil
}

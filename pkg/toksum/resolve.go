package toksum

import "sort"

// EncodingForModel returns the encoding name a model uses.
func EncodingForModel(model string) (string, error) {
	encoding, ok := modelEncodings[model]
	if !ok {
		return "", &InvalidModelError{Model: model}
	}
	return encoding, nil
}

// ModelsForEncoding returns the models that use an encoding, sorted by name.
// Every supported encoding has at least one model.
func ModelsForEncoding(encoding string) ([]string, error) {
	if !isValidEncoding(encoding) {
		return nil, &InvalidEncodingError{Encoding: encoding}
	}

	var models []string
	for model, enc := range modelEncodings {
		if enc == encoding {
			models = append(models, model)
		}
	}
	sort.Strings(models)
	return models, nil
}

// ResolveEncoding collapses an optional model name and an optional encoding
// name to a single encoding name. Empty strings mean "not supplied".
//
// Exactly one of the two is normally given. When both are given they must
// agree; when neither is given resolution fails with ErrMissingArgument.
func ResolveEncoding(model, encoding string) (string, error) {
	switch {
	case model == "" && encoding == "":
		return "", ErrMissingArgument

	case model != "" && encoding != "":
		want, err := EncodingForModel(model)
		if err != nil {
			return "", err
		}
		if !isValidEncoding(encoding) {
			return "", &InvalidEncodingError{Encoding: encoding}
		}
		if want != encoding {
			return "", &ConflictingArgumentsError{Model: model, Encoding: encoding, Want: want}
		}
		return encoding, nil

	case model != "":
		return EncodingForModel(model)

	default:
		if !isValidEncoding(encoding) {
			return "", &InvalidEncodingError{Encoding: encoding}
		}
		return encoding, nil
	}
}

// Selector names the encoder a caller wants, in one of three ways: a
// pre-built Encoder (used as-is), an encoding name, or a model name.
type Selector struct {
	Model    string
	Encoding string
	Encoder  Encoder
}

// ResolveEncoder turns a Selector into a usable Encoder. A non-nil
// sel.Encoder bypasses name resolution entirely.
func ResolveEncoder(sel Selector) (Encoder, error) {
	if sel.Encoder != nil {
		return sel.Encoder, nil
	}
	encoding, err := ResolveEncoding(sel.Model, sel.Encoding)
	if err != nil {
		return nil, err
	}
	return EncoderForName(encoding)
}

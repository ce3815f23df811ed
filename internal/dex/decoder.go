package dex

import (
	"errors"
	"fmt"

	"rayScope/internal/model"
)

// Decode parses data as the given layout. KindAuto runs Detect.
func Decode(data []byte, kind model.Kind) (model.Pool, error) {
	switch kind {
	case model.KindAuto:
		return Detect(data)
	case model.KindV4:
		return asPool(DecodeV4(data))
	case model.KindCPMM:
		return asPool(DecodeCPMM(data))
	case model.KindCLMM:
		return asPool(DecodeCLMM(data))
	case model.KindLaunchpad:
		return asPool(DecodeLaunchpad(data))
	default:
		return nil, fmt.Errorf("decode %q: %w", kind, ErrUnknownFormat)
	}
}

// Detect tries each layout in model.DetectOrder and returns the first that
// accepts data. A buffer matching a layout's shape but failing its field
// checks is reported with that layout's error.
func Detect(data []byte) (model.Pool, error) {
	for _, kind := range model.DetectOrder {
		pool, err := Decode(data, kind)
		if err == nil {
			return pool, nil
		}
		if errors.Is(err, ErrInvalidField) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("detect %d byte account: %w", len(data), ErrUnknownFormat)
}

// asPool keeps a failed decode from leaking a typed nil inside model.Pool.
func asPool[T model.Pool](pool T, err error) (model.Pool, error) {
	if err != nil {
		return nil, err
	}
	return pool, nil
}

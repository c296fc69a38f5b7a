package toksum

import (
	"errors"
	"testing"
)

func TestResolveEncoding(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		encoding string
		want     string
		wantErr  func(error) bool
	}{
		{
			name:    "neither supplied",
			wantErr: func(err error) bool { return errors.Is(err, ErrMissingArgument) },
		},
		{
			name:  "model only",
			model: "gpt-4",
			want:  "cl100k_base",
		},
		{
			name:     "encoding only",
			encoding: "p50k_base",
			want:     "p50k_base",
		},
		{
			name:     "consistent pair",
			model:    "gpt-4",
			encoding: "cl100k_base",
			want:     "cl100k_base",
		},
		{
			name:     "conflicting pair",
			model:    "gpt-4",
			encoding: "p50k_base",
			wantErr: func(err error) bool {
				var conflict *ConflictingArgumentsError
				return errors.As(err, &conflict) && conflict.Want == "cl100k_base"
			},
		},
		{
			name:  "unknown model",
			model: "gpt-9000",
			wantErr: func(err error) bool {
				var invalid *InvalidModelError
				return errors.As(err, &invalid)
			},
		},
		{
			name:     "unknown encoding",
			encoding: "x100k_base",
			wantErr: func(err error) bool {
				var invalid *InvalidEncodingError
				return errors.As(err, &invalid)
			},
		},
		{
			name:     "unknown model wins over unknown encoding",
			model:    "gpt-9000",
			encoding: "x100k_base",
			wantErr: func(err error) bool {
				var invalid *InvalidModelError
				return errors.As(err, &invalid)
			},
		},
		{
			name:     "valid model with unknown encoding",
			model:    "gpt-4",
			encoding: "x100k_base",
			wantErr: func(err error) bool {
				var invalid *InvalidEncodingError
				return errors.As(err, &invalid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEncoding(tt.model, tt.encoding)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				if !tt.wantErr(err) {
					t.Fatalf("unexpected error kind: %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveEncoding(%q, %q): %v", tt.model, tt.encoding, err)
			}
			if got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestResolveEncoderOverride(t *testing.T) {
	enc := fakeEncoder{}

	got, err := ResolveEncoder(Selector{Encoder: enc})
	if err != nil {
		t.Fatalf("ResolveEncoder with override: %v", err)
	}
	if got != enc {
		t.Fatalf("expected the supplied encoder back, got %T", got)
	}

	// The override bypasses name validation entirely.
	got, err = ResolveEncoder(Selector{Model: "gpt-9000", Encoder: enc})
	if err != nil {
		t.Fatalf("override should bypass resolution: %v", err)
	}
	if got != enc {
		t.Fatalf("expected the supplied encoder back, got %T", got)
	}
}

func TestResolveEncoderMissingArguments(t *testing.T) {
	if _, err := ResolveEncoder(Selector{}); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}
}

func TestResolveEncoderUnknownEncoding(t *testing.T) {
	var invalid *InvalidEncodingError
	if _, err := ResolveEncoder(Selector{Encoding: "x100k_base"}); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidEncodingError, got %v", err)
	}
}

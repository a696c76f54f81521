package dom

import "testing"

func TestLossyDecoder(t *testing.T) {
	cases := []struct {
		name   string
		chunks []string
		want   string
	}{
		{
			name:   "ascii",
			chunks: []string{"hello"},
			want:   "hello",
		},
		{
			name:   "multibyte intact",
			chunks: []string{"h\xc3\xa9llo"},
			want:   "héllo",
		},
		{
			name:   "multibyte split across chunks",
			chunks: []string{"h\xc3", "\xa9llo"},
			want:   "héllo",
		},
		{
			name:   "four byte rune split three ways",
			chunks: []string{"\xf0\x9f", "\x98", "\x80"},
			want:   "😀",
		},
		{
			name:   "malformed byte replaced",
			chunks: []string{"a\xffb"},
			want:   "a�b",
		},
		{
			name:   "lone continuation byte",
			chunks: []string{"\x80"},
			want:   "�",
		},
		{
			name:   "truncated sequence at end of input",
			chunks: []string{"ab\xe4\xb8"},
			want:   "ab�",
		},
		{
			name:   "aborted sequence mid chunk",
			chunks: []string{"\xe4A"},
			want:   "�A",
		},
		{
			name:   "empty chunks",
			chunks: []string{"", "ok", ""},
			want:   "ok",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var dec lossyDecoder
			var got []byte
			for _, c := range tc.chunks {
				got = dec.Decode(got, []byte(c))
			}
			got = dec.Flush(got)
			if string(got) != tc.want {
				t.Errorf("decoded %q, want %q", got, tc.want)
			}
		})
	}
}

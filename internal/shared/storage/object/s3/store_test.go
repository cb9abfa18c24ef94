package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/cv.pdf", want: "user/cv.pdf"},
		{name: "simple prefix", prefix: "cvs", key: "user/cv.pdf", want: "cvs/user/cv.pdf"},
		{name: "prefix trailing slash", prefix: "cvs/", key: "user/cv.pdf", want: "cvs/user/cv.pdf"},
		{name: "prefix and key slashes", prefix: "/cvs/", key: "/user/cv.pdf", want: "cvs/user/cv.pdf"},
		{name: "nested prefix", prefix: "cvs/sub", key: "user/cv.pdf", want: "cvs/sub/user/cv.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

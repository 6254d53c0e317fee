package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloudinaryPublicID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{
			name:   "versioned upload in folder",
			url:    "https://res.cloudinary.com/demo/image/upload/v1712345678/publications/abc123.jpg",
			want:   "publications/abc123",
			wantOK: true,
		},
		{
			name:   "transformations before version",
			url:    "https://res.cloudinary.com/demo/image/upload/c_fill,w_300/v17/uploads/publications/x1.png",
			want:   "uploads/publications/x1",
			wantOK: true,
		},
		{
			name:   "no version segment",
			url:    "https://res.cloudinary.com/demo/image/upload/buyer_avatars/me.webp",
			want:   "buyer_avatars/me",
			wantOK: true,
		},
		{
			name: "other cloud",
			url:  "https://res.cloudinary.com/someone-else/image/upload/v1/publications/a.jpg",
		},
		{
			name: "foreign host",
			url:  "https://images.example.com/demo/image/upload/v1/a.jpg",
		},
		{
			name: "not an upload url",
			url:  "https://res.cloudinary.com/demo/image/fetch/v1/a.jpg",
		},
		{
			name: "nothing after version",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/",
		},
		{
			name: "empty",
			url:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cloudinaryPublicID(tt.url, "demo")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

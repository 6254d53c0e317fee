package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"realtime": map[string]any{
			"natsUrl": "",
			"topicId": "",
		},
		"media": map[string]any{
			"cloudinary": map[string]any{
				"cloudName": "",
			},
		},
		"secretKey": map[string]any{
			"reset": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REALTIME_TOPICID", want: "realtime.topicId"},
		{envKey: "REALTIME_NATSURL", want: "realtime.natsUrl"},
		{envKey: "MEDIA_CLOUDINARY_CLOUDNAME", want: "media.cloudinary.cloudName"},
		{envKey: "SECRETKEY_RESET", want: "secretKey.reset"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

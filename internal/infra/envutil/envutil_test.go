package envutil

import "testing"

func TestHostEnvKey(t *testing.T) {
	if got := HostEnvKey(" s3_region "); got != "SITEMAP_S3_REGION" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestGetHostEnvTrims(t *testing.T) {
	t.Setenv("SITEMAP_S3_ACCESS_KEY", "  minio \n")
	if got := GetHostEnv("S3_ACCESS_KEY"); got != "minio" {
		t.Fatalf("unexpected value: %q", got)
	}
	t.Setenv("SITEMAP_S3_ACCESS_KEY", "")
	if got := GetHostEnv("S3_ACCESS_KEY"); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "drillbox_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "drillbox_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "drillbox_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "drillbox_Linux_arm64.tar.gz", false},
		{"windows amd64", "windows", "amd64", "drillbox_Windows_x86_64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  drillbox_Linux_x86_64.tar.gz\n" +
		"def456  drillbox_Darwin_all.tar.gz\n" +
		"\n" +
		"not a checksum line with extra fields here\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, map[string]string{
		"drillbox_Linux_x86_64.tar.gz": "abc123",
		"drillbox_Darwin_all.tar.gz":   "def456",
	}, got)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release bytes")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))
	assert.ErrorIs(t, verifyChecksum(data, "deadbeef"), ErrChecksum)
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest  string
		current string
		want    bool
	}{
		{"v1.2.0", "v1.1.0", true},
		{"v1.1.0", "v1.1.0", false},
		{"v1.0.0", "v1.1.0", false},
		{"1.2.0", "1.1.9", true},
		{"v2.0.0", "(devel)", false},
		{"garbage", "v1.0.0", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isNewer(tt.latest, tt.current),
			"isNewer(%q, %q)", tt.latest, tt.current)
	}
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/misaki/drillbox/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name": "v1.4.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.3.0"})
	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", result.LatestVersion)
	assert.True(t, result.UpdateAvailable)
}

func TestCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestUpdate_DevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdate_EndToEnd(t *testing.T) {
	// Build a tar.gz containing a fake binary.
	binary := []byte("#!/bin/sh\necho drillbox v1.4.0\n")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "drillbox",
		Mode:     0o755,
		Size:     int64(len(binary)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(binary)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	archive := buf.Bytes()

	sum := sha256.Sum256(archive)
	asset, err := assetName()
	require.NoError(t, err)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/misaki/drillbox/releases/latest":
			fmt.Fprint(w, `{"tag_name": "v1.4.0"}`)
		case filepath.Base(r.URL.Path) == "checksums.txt":
			fmt.Fprint(w, checksums)
		case filepath.Base(r.URL.Path) == asset:
			_, _ = w.Write(archive)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	// Target "binary" the updater will replace.
	target := filepath.Join(t.TempDir(), "drillbox")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	c.execPath = func() (string, error) { return target, nil }

	stages := []string{}
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.3.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)

	replaced, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, binary, replaced)
}

func TestUpdate_ChecksumMismatch(t *testing.T) {
	asset, err := assetName()
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case filepath.Base(r.URL.Path) == "checksums.txt":
			fmt.Fprintf(w, "%s  %s\n", "00112233", asset)
		case filepath.Base(r.URL.Path) == asset:
			_, _ = w.Write([]byte("archive bytes"))
		default:
			fmt.Fprint(w, `{"tag_name": "v9.9.9"}`)
		}
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrChecksum)
}

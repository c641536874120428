package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/artwork-storefront/internal/config"
)

func TestResolveURLPassThrough(t *testing.T) {
	svc, err := NewAssetService(config.AWSConfig{CloudFrontURL: "https://cdn.example"})
	require.NoError(t, err)

	assert.Equal(t, "", svc.ResolveURL(""))
	assert.Equal(t, "", svc.ResolveURL("   "))
	assert.Equal(t, "https://img.example/a.png", svc.ResolveURL("https://img.example/a.png"))
	assert.Equal(t, "HTTP://img.example/a.png", svc.ResolveURL("HTTP://img.example/a.png"))
	assert.Equal(t, "//img.example/a.png", svc.ResolveURL("//img.example/a.png"))
	assert.Equal(t, "data:image/png;base64,AAAA", svc.ResolveURL("data:image/png;base64,AAAA"))
}

func TestResolveURLThroughCDN(t *testing.T) {
	svc, err := NewAssetService(config.AWSConfig{CloudFrontURL: "https://cdn.example/", S3Bucket: "ignored"})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/prints/a.png", svc.ResolveURL("/prints/a.png"))
	assert.Equal(t, "https://cdn.example/prints/a.png", svc.ResolveURL("prints/a.png"))
}

func TestResolveURLPresigned(t *testing.T) {
	svc, err := NewAssetService(config.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		S3Bucket:        "shop-assets",
		PresignTTL:      15,
	})
	require.NoError(t, err)

	url := svc.ResolveURL("prints/a.png")
	assert.True(t, strings.HasPrefix(url, "https://shop-assets.s3."), url)
	assert.Contains(t, url, "/prints/a.png?")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
}

func TestResolveURLWithoutStorage(t *testing.T) {
	svc, err := NewAssetService(config.AWSConfig{})
	require.NoError(t, err)
	assert.Equal(t, "prints/a.png", svc.ResolveURL("prints/a.png"))

	var nilSvc *AssetService
	assert.Equal(t, "prints/a.png", nilSvc.ResolveURL("prints/a.png"))
}

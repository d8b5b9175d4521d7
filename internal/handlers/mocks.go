package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openrelief/disasterhub/pkg/response"
)

// The endpoints below return fixed payloads standing in for third-party
// integrations (social feed ingestion, AI image verification, AI-assisted
// geocoding). The payloads are part of the demo contract; do not invent
// behaviour here.

// mockSocialPosts is the deterministic social-media feed.
var mockSocialPosts = []gin.H{
	{"post": "#flood Need food urgently in NYC", "user": "citizen1"},
	{"post": "#earthquake need shelter!", "user": "local2"},
}

// SocialMedia returns the mock feed for any disaster id.
func SocialMedia(c *gin.Context) {
	response.Success(c, http.StatusOK, mockSocialPosts)
}

type verifyImagePayload struct {
	ImageURL string `json:"image_url"`
}

// VerifyImage acknowledges an image verification request with the stub
// verdict. TODO: call the Gemini verification API once credentials and
// prompt are settled.
func VerifyImage(c *gin.Context) {
	var payload verifyImagePayload
	if !bindAndValidate(c, &payload) {
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"verified": true,
		"note":     "No manipulation detected.",
	})
}

type geocodePayload struct {
	Description string `json:"description"`
}

// Geocode resolves a free-form description to the stub location. TODO:
// replace with the Mapbox forward-geocoding call.
func Geocode(c *gin.Context) {
	var payload geocodePayload
	if !bindAndValidate(c, &payload) {
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"locationName": "Manhattan, NYC",
		"lat":          40.7831,
		"lon":          -73.9712,
	})
}

package service

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/littlewardrobe/pkg/api"
)

// maxImageBytes caps uploads sent to the tagging model.
const maxImageBytes = 8 << 20

// AnalyzeImage asks the tagging model to describe a garment photo. The
// result is a draft for the user to confirm; nothing is stored.
func (s *WardrobeService) AnalyzeImage(ctx context.Context, req *connect.Request[api.AnalyzeImageRequest]) (*connect.Response[api.AnalyzeImageResponse], error) {
	if s.tagger == nil {
		return nil, toConnectError(errTaggingDisabled)
	}

	image, mimeType, err := decodeImage(req.Msg.ImageBase64, req.Msg.MimeType)
	if err != nil {
		return nil, toConnectError(err)
	}

	analysis, err := s.tagger.Analyze(ctx, image, mimeType)
	if err != nil {
		slog.Error("AnalyzeImage failed", "error", err)
		return nil, toConnectError(upstream(errTaggingUnavailable, err))
	}
	return connect.NewResponse(&api.AnalyzeImageResponse{Analysis: analysis}), nil
}

// decodeImage accepts raw base64 or a data URL ("data:image/png;base64,...").
// A MIME type in the data URL is used when none was given explicitly.
func decodeImage(encoded, mimeType string) ([]byte, string, error) {
	encoded = strings.TrimSpace(encoded)
	if rest, ok := strings.CutPrefix(encoded, "data:"); ok {
		header, data, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, "", invalidf("malformed data URL")
		}
		if mimeType == "" {
			mimeType = strings.TrimSuffix(header, ";base64")
		}
		encoded = data
	}
	if encoded == "" {
		return nil, "", invalidf("imageBase64 required")
	}
	if base64.StdEncoding.DecodedLen(len(encoded)) > maxImageBytes {
		return nil, "", invalidf("image larger than %d bytes", maxImageBytes)
	}

	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", invalidf("image is not valid base64: %v", err)
	}
	return image, mimeType, nil
}

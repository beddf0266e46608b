package utils_test

import (
	"testing"

	"bitbucket.org/wilckenslagers/brewery_backend/utils"
)

func TestVesselQRRoundTrip(t *testing.T) {
	ids := []string{
		"B-1",
		"BARRIL-2024-0042",
		"fermenter_9",
		"A b/c:d",
	}
	for _, id := range ids {
		img, err := utils.EncodeVesselQR(id)
		if err != nil {
			t.Fatalf("EncodeVesselQR(%q): %v", id, err)
		}
		got, err := utils.DecodeVesselQR(img)
		if err != nil {
			t.Fatalf("DecodeVesselQR(%q): %v", id, err)
		}
		if got != id {
			t.Fatalf("round trip of %q returned %q", id, got)
		}
	}
}

func TestEncodeVesselQREmptyID(t *testing.T) {
	if _, err := utils.EncodeVesselQR(""); !utils.IsClass(err, utils.ErrorClassValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestDecodeVesselQRNotPNG(t *testing.T) {
	if _, err := utils.DecodeVesselQR([]byte("not a png")); err == nil {
		t.Fatal("decoding garbage succeeded")
	}
}

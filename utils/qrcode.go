package utils

import (
	"bytes"
	"image/png"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// EncodeVesselQR renders a vessel id as a PNG QR label. Medium error
// correction keeps the label scannable after print-and-rescan wear.
func EncodeVesselQR(id string) ([]byte, error) {
	if id == "" {
		return nil, NewValidationError("vessel id is required")
	}
	return qrcode.Encode(id, qrcode.Medium, qrImageSize)
}

// DecodeVesselQR recovers the vessel id from a PNG QR label produced by
// EncodeVesselQR (or any scanner image carrying a single QR symbol).
func DecodeVesselQR(data []byte) (string, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", NewValidationError("not a PNG image: %s", err.Error())
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	result, err := zxingqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", err
	}
	return result.GetText(), nil
}

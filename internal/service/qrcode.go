package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderNumber string) ([]byte, error)
}

// DefaultQRGenerator encodes the public tracking link of an order as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Generate(orderNumber string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	link := fmt.Sprintf("%s/orders/%s", strings.TrimRight(g.BaseURL, "/"), orderNumber)
	return qrcode.Encode(link, qrcode.Medium, size)
}

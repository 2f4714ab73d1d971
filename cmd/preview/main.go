package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/jdk2588/pixelpush/font"
)

// Renders the message bitmap as a PNG mock of the contribution graph.
func main() {
	message := "Pizza!"
	if len(os.Args) > 1 {
		message = os.Args[1]
	}

	bitmap, err := font.Render(message, 1)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	const cell = 14
	const inset = 2

	img := image.NewRGBA(image.Rect(0, 0, bitmap.Width()*cell, font.Rows*cell))

	bg := color.NRGBA{R: 13, G: 17, B: 23, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	offCell := color.NRGBA{R: 22, G: 27, B: 34, A: 255}
	onCell := color.NRGBA{R: 57, G: 211, B: 83, A: 255}

	for row := 0; row < font.Rows; row++ {
		for col := 0; col < bitmap.Width(); col++ {
			c := offCell
			if bitmap.On(row, col) {
				c = onCell
			}
			rect := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
			fillRect(img, rect.Inset(inset), c)
		}
	}

	if err := os.MkdirAll("assets", 0o755); err != nil {
		panic(err)
	}

	f, err := os.Create("assets/graph.png")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.NRGBA) {
	draw.Draw(img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

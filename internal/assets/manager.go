// Package assets paints the game's sprites once with ebiten/vector and hands
// out the cached images.
package assets

import (
	"image/color"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprite names.
const (
	Monkey      = "monkey"
	MonkeyBlink = "monkey_blink"
	Dizzy       = "dizzy"
	DizzySpin   = "dizzy_spin"
	Welcome     = "welcome"
	WelcomeWave = "welcome_wave"
	Banana      = "banana"
	Stone       = "stone"
)

var (
	ColFur    = color.RGBA{0x8d, 0x55, 0x24, 0xff}
	ColFace   = color.RGBA{0xf1, 0xc2, 0x8f, 0xff}
	ColEye    = color.RGBA{0x21, 0x21, 0x21, 0xff}
	ColBanana = color.RGBA{0xff, 0xe0, 0x3d, 0xff}
	ColStem   = color.RGBA{0x5d, 0x40, 0x37, 0xff}
	ColStone  = color.RGBA{0x8a, 0x8a, 0x8a, 0xff}
	ColCrack  = color.RGBA{0x5f, 0x5f, 0x5f, 0xff}
	ColStar   = color.RGBA{0xff, 0xd5, 0x4f, 0xff}
)

type face int

const (
	faceOpen face = iota
	faceBlink
	faceDizzy
)

type painter struct {
	w, h  int
	paint func(img *ebiten.Image)
}

var painters = map[string]painter{
	Monkey:      {24, 24, func(img *ebiten.Image) { drawMonkey(img, 12, 12, 1, faceOpen, false) }},
	MonkeyBlink: {24, 24, func(img *ebiten.Image) { drawMonkey(img, 12, 12, 1, faceBlink, false) }},
	Dizzy:       {120, 120, func(img *ebiten.Image) { drawDizzy(img, 0) }},
	DizzySpin:   {120, 120, func(img *ebiten.Image) { drawDizzy(img, math.Pi/5) }},
	Welcome:     {120, 120, func(img *ebiten.Image) { drawMonkey(img, 60, 64, 4, faceOpen, false) }},
	WelcomeWave: {120, 120, func(img *ebiten.Image) { drawMonkey(img, 60, 64, 4, faceOpen, true) }},
	Banana:      {20, 20, drawBanana},
	Stone:       {20, 20, drawStone},
}

// Animation is a looping frame sequence; Delays are in ticks.
type Animation struct {
	Frames []*ebiten.Image
	Delays []int
}

var animations = map[string]struct {
	frames []string
	delays []int
}{
	Monkey:  {[]string{Monkey, MonkeyBlink}, []int{180, 12}},
	Dizzy:   {[]string{Dizzy, DizzySpin}, []int{15, 15}},
	Welcome: {[]string{Welcome, WelcomeWave}, []int{40, 40}},
	Banana:  {[]string{Banana}, []int{1}},
	Stone:   {[]string{Stone}, []int{1}},
}

var (
	mu    sync.Mutex
	cache = make(map[string]*ebiten.Image)
)

// LoadImage returns the named sprite, painting it on first use.
func LoadImage(name string) *ebiten.Image {
	mu.Lock()
	defer mu.Unlock()

	if img, ok := cache[name]; ok {
		return img
	}
	p, ok := painters[name]
	if !ok {
		log.Fatalf("unknown sprite %q", name)
	}
	img := ebiten.NewImage(p.w, p.h)
	p.paint(img)
	cache[name] = img
	return img
}

// LoadAnimation returns the frames and per-frame delays for name.
func LoadAnimation(name string) Animation {
	a, ok := animations[name]
	if !ok {
		log.Fatalf("unknown animation %q", name)
	}
	anim := Animation{Delays: a.delays}
	for _, f := range a.frames {
		anim.Frames = append(anim.Frames, LoadImage(f))
	}
	return anim
}

// drawMonkey paints a monkey head centred on (cx, cy). At s == 1 it fits a
// 24x24 box.
func drawMonkey(img *ebiten.Image, cx, cy, s float32, f face, wave bool) {
	// Ears
	vector.DrawFilledCircle(img, cx-9*s, cy-1*s, 3.5*s, ColFur, true)
	vector.DrawFilledCircle(img, cx+9*s, cy-1*s, 3.5*s, ColFur, true)
	vector.DrawFilledCircle(img, cx-9*s, cy-1*s, 2*s, ColFace, true)
	vector.DrawFilledCircle(img, cx+9*s, cy-1*s, 2*s, ColFace, true)

	// Head and face
	vector.DrawFilledCircle(img, cx, cy, 8*s, ColFur, true)
	vector.DrawFilledCircle(img, cx-2.5*s, cy-1.5*s, 3.5*s, ColFace, true)
	vector.DrawFilledCircle(img, cx+2.5*s, cy-1.5*s, 3.5*s, ColFace, true)
	vector.DrawFilledCircle(img, cx, cy+3*s, 4.5*s, ColFace, true)

	switch f {
	case faceOpen:
		vector.DrawFilledCircle(img, cx-2.5*s, cy-2*s, 1.2*s, ColEye, true)
		vector.DrawFilledCircle(img, cx+2.5*s, cy-2*s, 1.2*s, ColEye, true)
	case faceBlink:
		vector.StrokeLine(img, cx-3.7*s, cy-2*s, cx-1.3*s, cy-2*s, 0.8*s, ColEye, true)
		vector.StrokeLine(img, cx+1.3*s, cy-2*s, cx+3.7*s, cy-2*s, 0.8*s, ColEye, true)
	case faceDizzy:
		for _, ex := range []float32{cx - 2.5*s, cx + 2.5*s} {
			vector.StrokeLine(img, ex-1.2*s, cy-3.2*s, ex+1.2*s, cy-0.8*s, 0.7*s, ColEye, true)
			vector.StrokeLine(img, ex-1.2*s, cy-0.8*s, ex+1.2*s, cy-3.2*s, 0.7*s, ColEye, true)
		}
	}

	// Nostrils and mouth
	vector.DrawFilledCircle(img, cx-0.8*s, cy+1.5*s, 0.5*s, ColEye, true)
	vector.DrawFilledCircle(img, cx+0.8*s, cy+1.5*s, 0.5*s, ColEye, true)
	vector.StrokeLine(img, cx-2*s, cy+4.5*s, cx+2*s, cy+4.5*s, 0.6*s, ColEye, true)

	if wave {
		vector.StrokeLine(img, cx+9*s, cy+6*s, cx+12*s, cy-4*s, 1.5*s, ColFur, true)
		vector.DrawFilledCircle(img, cx+12*s, cy-5*s, 2*s, ColFace, true)
	}
}

// drawDizzy paints a large dizzy monkey with stars circling its head; phase
// rotates the stars.
func drawDizzy(img *ebiten.Image, phase float64) {
	const cx, cy = 60, 66
	drawMonkey(img, cx, cy, 4, faceDizzy, false)
	for i := 0; i < 5; i++ {
		a := phase + float64(i)*2*math.Pi/5
		x := cx + float32(40*math.Cos(a))
		y := 22 + float32(10*math.Sin(a))
		vector.DrawFilledCircle(img, x, y, 4, ColStar, true)
	}
}

// drawBanana paints a crescent of overlapping discs with a stem at one end.
func drawBanana(img *ebiten.Image) {
	const cx, cy, r = 10, 2, 13
	for i := 0; i <= 8; i++ {
		a := math.Pi*0.2 + float64(i)*math.Pi*0.6/8
		x := cx + float32(r*math.Cos(a))
		y := cy + float32(r*math.Sin(a))
		rad := float32(2.2 + 1.3*math.Sin(float64(i)*math.Pi/8))
		vector.DrawFilledCircle(img, x, y, rad, ColBanana, true)
	}
	sx := cx + float32(r*math.Cos(math.Pi*0.2))
	sy := cy + float32(r*math.Sin(math.Pi*0.2))
	vector.DrawFilledRect(img, sx-1, sy-3, 2, 3, ColStem, true)
}

func drawStone(img *ebiten.Image) {
	vector.DrawFilledCircle(img, 10, 11, 8, ColStone, true)
	vector.DrawFilledCircle(img, 7, 9, 3, color.RGBA{0xa5, 0xa5, 0xa5, 0xff}, true)
	vector.StrokeLine(img, 11, 7, 13, 12, 1, ColCrack, true)
	vector.StrokeLine(img, 13, 12, 11, 15, 1, ColCrack, true)
}

package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

const bannerText = `
██╗      █████╗ ███╗   ██╗ ██████╗  ▄▄███▄▄· █████╗ ██╗      █████╗ ██████╗ ██╗   ██╗
██║     ██╔══██╗████╗  ██║██╔════╝  ██╔════╝██╔══██╗██║     ██╔══██╗██╔══██╗╚██╗ ██╔╝
██║     ███████║██╔██╗ ██║██║  ███╗ ███████╗███████║██║     ███████║██████╔╝ ╚████╔╝
██║     ██╔══██║██║╚██╗██║██║   ██║ ╚════██║██╔══██║██║     ██╔══██║██╔══██╗  ╚██╔╝
███████╗██║  ██║██║ ╚████║╚██████╔╝ ███████║██║  ██║███████╗██║  ██║██║  ██║   ██║
╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝  ╚═▀▀▀══╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝
 developer salaries from hh.ru & superjob.ru
`

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	runes := []rune(text)
	steps := float32(len(runes))

	var b strings.Builder
	for i, r := range runes {
		b.WriteString(startColor.Fade(0, steps, float32(i), endColor).Sprint(string(r)))
	}
	return b.String()
}

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// ColorizeSalary formats a ruble amount and colors it by range
func ColorizeSalary(amount int) string {
	formatted := utils.FormatRubles(amount)

	switch {
	case amount >= 300000:
		return pterm.Green(formatted)
	case amount >= 200000:
		return pterm.LightGreen(formatted)
	case amount >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

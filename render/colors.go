package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbWall       = RGB{86, 95, 137}
	RgbBall       = RGB{255, 255, 255}
	RgbTopPaddle  = RGB{122, 162, 247}
	RgbBotPaddle  = RGB{158, 206, 106}

	RgbPromptPending = RGB{120, 124, 153}
	RgbPromptStart   = RGB{255, 158, 100}
	RgbPromptDone    = RGB{158, 206, 106}
	RgbCenterMark    = RGB{224, 175, 104}

	RgbSpeedSlow = RGB{125, 207, 255}
	RgbSpeedFast = RGB{247, 118, 142}

	RgbStatusText = RGB{192, 202, 245}
	RgbBannerBg   = RGB{41, 46, 66}
	RgbWinner     = RGB{255, 215, 0}
)

// Style returns a foreground style over the board background
func Style(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(RGBToTcell(fg)).Background(RGBToTcell(RgbBackground))
}

// SideColor returns the top or bottom paddle color
func SideColor(top bool) RGB {
	if top {
		return RgbTopPaddle
	}
	return RgbBotPaddle
}

// PromptProgressColor shades typed prompt characters from the start color
// toward the done color as progress goes from 0 to 1
func PromptProgressColor(progress float64) RGB {
	return RgbPromptStart.BlendLab(RgbPromptDone, progress)
}

// SpeedColor maps travel time to a cool-to-hot gradient
// slow is the starting travel time, fast the floor
func SpeedColor(travel, slow, fast float64) RGB {
	if slow <= fast {
		return RgbSpeedSlow
	}
	t := (slow - travel) / (slow - fast)
	return RgbSpeedSlow.BlendLab(RgbSpeedFast, t)
}

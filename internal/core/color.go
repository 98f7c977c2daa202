package core

// Color is the role of a screen cell. The platform layer decides how each
// role looks, so game code never picks terminal color codes.
type Color uint8

// Cell roles.
const (
	ColorDefault Color = iota
	ColorText          // Message box body
	ColorMuted         // Borders, hints, fading popups
	ColorHUD           // Score readout
	ColorBest          // Best score readout
	ColorTitle         // Menu title
	ColorWarning       // Pause title, small-window notice
	ColorDanger        // Game over title

	ColorPlayer
	ColorPlayerDash // Player while a dash is active
	ColorPlayerHit  // Player after a collision

	ColorObstacleSmall
	ColorObstacleMedium
	ColorObstacleLarge
	ColorGrazed // Obstacle that already paid its graze bonus

	ColorAccent    // Graze popups, multiplier above 1
	ColorDash      // Dash meter while recharging, sprint popup
	ColorDashReady // Dash meter when ready

	ColorStarFar
	ColorStarMid
	ColorStarNear
)

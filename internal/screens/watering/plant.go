package watering

const plantSeed = `


   .
 ~~~~~~~`

const plantSprout = `


   \/
 ~~|~~~~`

const plantYoung = `
   _
  (_)/)
   |/
 ~~|~~~~`

const plantGrown = `  .-.
 (_@_)
  (_)\/)
   |/
 ~~|~~~~`

const plantWithered = `


  _ ,_
 ~~\~~~~`

var growthArt = []string{plantSeed, plantSprout, plantYoung, plantGrown}

// plantArt picks the drawing for a stage, spreading the drawings evenly
// over any stage count.
func plantArt(stage, stageCount int, withered bool) string {
	if withered {
		return plantWithered
	}
	if stageCount <= 0 {
		return growthArt[0]
	}
	last := len(growthArt) - 1
	idx := stage * last / stageCount
	return growthArt[min(max(idx, 0), last)]
}

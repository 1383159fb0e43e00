/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: prescan.go
Description: Lightweight pre-scan that locates disambiguating dates in large datasets.
When the main inference path samples ~1000 examples by stride, it can miss the rare
date carrying a value > 12 at a day/month position - the evidence that proves DD/MM
vs MM/DD ordering. This pass scans ALL inputs with byte-level work only and records
one representative index per ambiguous numeric position.
*/

package prescan

// Positions is the number of leading numeric positions the scan tracks.
// The first two 1-2 digit segments are the only ones that can be a
// day-or-month pair, so two injection slots suffice.
const Positions = 2

// FindDisambiguatingIndices scans all inputs for disambiguating examples.
//
// A disambiguating example has a 1-2 digit numeric segment with value > 12
// at numeric position 0 or 1. Four-digit segments (years) are skipped and
// do not consume a position. Returns one input index per position, -1 when
// no example covers that position. Short-circuits once both are found.
func FindDisambiguatingIndices(dates []string) [Positions]int {
	result := [Positions]int{-1, -1}

	for idx, date := range dates {
		numPos := 0
		i := 0

		for i < len(date) && numPos < Positions {
			c := date[i]
			if c < '0' || c > '9' {
				i++
				continue
			}

			start := i
			for i < len(date) && date[i] >= '0' && date[i] <= '9' {
				i++
			}
			digitLen := i - start

			// Skip 4-digit years entirely
			if digitLen == 4 {
				continue
			}

			if digitLen == 1 || digitLen == 2 {
				val := uint32(date[start] - '0')
				if digitLen == 2 {
					val = val*10 + uint32(date[start+1]-'0')
				}
				if val > 12 && result[numPos] < 0 {
					result[numPos] = idx
				}
			}
			// 3-digit and longer segments are not date components here,
			// but they still consume a numeric position
			numPos++
		}

		if result[0] >= 0 && result[1] >= 0 {
			break
		}
	}

	return result
}

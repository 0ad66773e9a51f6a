// Package words turns clock values into the spoken English fragments shown on
// the face. Every function here is total over its input range.
package words

var hourWords = [12]string{
	"twelve", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten", "eleven",
}

var onesWords = [10]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

var teenWords = [10]string{
	"ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = [6]string{"", "", "twenty", "thirty", "forty", "fifty"}

const (
	oClock = "o'clock"
	oh     = "oh"
)

// minuteTable holds the (tens, ones) phrase for every minute of the hour.
var minuteTable [60][2]string

func init() {
	for m := 0; m < 60; m++ {
		switch {
		case m == 0:
			minuteTable[m] = [2]string{"", oClock}
		case m < 10:
			minuteTable[m] = [2]string{oh, onesWords[m]}
		case m < 20:
			minuteTable[m] = [2]string{"", teenWords[m-10]}
		default:
			minuteTable[m] = [2]string{tensWords[m/10], onesWords[m%10]}
		}
	}
}

// HourWord returns the twelve-hour word for a 24-hour clock hour.
func HourWord(hour int) string {
	return hourWords[mod(hour, 24)%12]
}

// MinuteWords splits a minute into the phrase for the tens row and the phrase
// for the ones row. Either may be empty.
func MinuteWords(minute int) (tens, ones string) {
	p := minuteTable[mod(minute, 60)]
	return p[0], p[1]
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

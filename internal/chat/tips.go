package chat

// audioAcknowledgment is returned when transcription is disabled, prefixed to
// a randomly chosen health tip.
const audioAcknowledgment = "Twakiriye ubutumwa bwawe bw'amajwi. We received your voice message."

var healthTips = []string{
	"Remember to drink clean water regularly throughout the day.",
	"Try to sleep at least seven hours each night to help your body recover.",
	"Washing hands with soap before meals prevents many common illnesses.",
	"A short daily walk keeps your heart and mind healthy.",
	"Eat fruits and vegetables with every meal when you can.",
	"If a fever lasts more than two days, visit your nearest health center.",
}

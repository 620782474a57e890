package hal

// Board wiring shared by every platform. Host implementations use the same
// identifiers so logs read the same on both.
const (
	PinGreenLED Pin = 11
	PinBlueLED  Pin = 12
	PinRedLED   Pin = 13

	// The joystick's X wiper lands on ADC1 (GP27) and Y on ADC0 (GP26).
	ChannelX ADCChannel = 1
	ChannelY ADCChannel = 0

	DisplayWidth  = 128
	DisplayHeight = 64

	// PWMPeriod is the counter wrap of both PWM channels; duty is in [0, PWMPeriod].
	PWMPeriod = 4095
)

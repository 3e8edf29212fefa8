package rtcm3

import (
	"testing"
	"time"

	"github.com/goblimey/rtcm3codec/rtcm/msm"
	"github.com/goblimey/rtcm3codec/rtcm/testdata"
	"github.com/goblimey/rtcm3codec/rtcm/utils"

	"github.com/kylelemons/godebug/diff"
)

const wantSatelliteMask = 3
const wantSignalMask = 7
const wantCellMask = 1
const wantMessageType = 1074
const wantStationID = 1
const wantEpochTime = 2
const wantMultipleMessage = true
const wantIssue = 3
const wantTransTime = 4
const wantClockSteeringIndicator = 5
const wantExternalClockSteeringIndicator = 6
const wantSmoothing = true
const wantSmoothingInterval = 7

const wantSatelliteID = 8
const wantRangeWhole uint = 9
const wantRangeFractional uint = 10

const wantSignalID = 11
const wantRangeDelta = 12
const wantPhaseRangeDelta = 13
const wantLockTimeIndicator = 14
const wantHalfCycleAmbiguity = true
const wantCNR = 15
const wantWavelength = 16.0

func createMSM4() *msm.Message {
	hdr := &msm.Header{
		MessageType:             wantMessageType,
		Constellation:           msm.GPS,
		SubType:                 4,
		StationID:               wantStationID,
		EpochTime:               wantEpochTime,
		MultipleMessage:         wantMultipleMessage,
		IssueOfDataStation:      wantIssue,
		SessionTransmissionTime: wantTransTime,
		ClockSteeringIndicator:  wantClockSteeringIndicator,
		ExternalClockIndicator:  wantExternalClockSteeringIndicator,
		DivergenceFreeSmoothing: wantSmoothing,
		SmoothingInterval:       wantSmoothingInterval,
		SatelliteMask:           wantSatelliteMask,
		SignalMask:              wantSignalMask,
		CellMask:                wantCellMask,
	}
	hdr.Normalize()

	sat := msm.Satellite{
		SatelliteID:        wantSatelliteID,
		RoughRangeMs:       wantRangeWhole,
		RoughRangeModuloMs: wantRangeFractional,
	}

	sig := msm.Signal{
		SatelliteID:        wantSatelliteID,
		SignalID:           wantSignalID,
		FinePseudorange:    wantRangeDelta,
		FinePhaseRange:     wantPhaseRangeDelta,
		PhaseRangeLockTime: wantLockTimeIndicator,
		HalfCycleAmbiguity: wantHalfCycleAmbiguity,
		CarrierNoiseRatio:  wantCNR,
	}

	return &msm.Message{
		Header:     hdr,
		Satellites: []msm.Satellite{sat},
		Signals:    []msm.Signal{sig},
	}
}

// createRTCMWithMSM4 creates an RTCM message containing the given MSM4,
// setting the time to utcTime.  The Readable doesn't match the RawData.
func createRTCMWithMSM4(msm4 *msm.Message, utcTime time.Time) *Message {
	message := NewMessage(utils.MessageTypeMSM4GPS, "", testdata.MessageType1074)
	message.Readable = msm4
	message.UTCTime = &utcTime

	return message
}

// TestNew checks that New creates a message correctly.
func TestNew(t *testing.T) {

	const wantType = utils.MessageTypeMSM4QZSS
	const wantWarning = "a warning"
	wantBitstream := testdata.UnhandledMessageType1024
	const wantValid = false
	const wantComplete = false
	const wantCRCValid = false
	var wantUTCTime *time.Time = nil
	var wantReadable interface{} = nil

	message := NewMessage(wantType, wantWarning, wantBitstream)

	if wantType != message.MessageType {
		t.Errorf("want %d got %d", wantType, message.MessageType)
	}

	if wantWarning != message.ErrorMessage {
		t.Errorf("want %s got %s", wantWarning, message.ErrorMessage)
	}

	// Can't compare the bitstreams so convert them to strings.
	want := string(wantBitstream)
	got := string(message.RawData)
	if want != got {
		t.Errorf("want %s got %s", want, got)
	}

	// Check the fields that should never be set by New

	if wantUTCTime != message.UTCTime {
		t.Errorf("want %v got %v", wantUTCTime, message.UTCTime)
	}

	if wantReadable != message.Readable {
		t.Errorf("want %v got %v", wantReadable, message.Readable)
	}
}

// TestNewNonRTCM checks that NewNonRTCM creates a non-RTCM message correctly.
func TestNewNonRTCM(t *testing.T) {

	const wantType = utils.NonRTCMMessage
	const wantWarning = ""
	const wantValid = false
	const wantComplete = false
	const wantCRCValid = false
	var wantBitstream = []byte{'j', 'u', 'n', 'k'}
	var wantUTCTime *time.Time = nil
	var wantReadable interface{} = nil

	message := NewNonRTCM(wantBitstream)

	if wantType != message.MessageType {
		t.Errorf("want %d got %d", wantType, message.MessageType)
	}

	if wantWarning != message.ErrorMessage {
		t.Errorf("want %s got %s", wantWarning, message.ErrorMessage)
	}

	// Can't compare the bit streams so convert them to strings.
	want := string(wantBitstream)
	got := string(message.RawData)
	if want != got {
		t.Errorf("want %s got %s", want, got)
	}

	// Check the fields that should never be set by NewNonRTCM

	if wantUTCTime != message.UTCTime {
		t.Errorf("want %v got %v", wantUTCTime, message.UTCTime)
	}

	if wantReadable != message.Readable {
		t.Errorf("want %v got %v", wantReadable, message.Readable)
	}
}

// TestString checks the String method for a message containing an MSM4.
func TestString(t *testing.T) {

	const resultTemplateMSM4Complete = `2023-02-14 01:02:03.004 +0000 UTC
message type 1074, frame length 42
00000000  d3 04 32 43 20 01 00 00  00 04 00 00 08 00 00 00  |..2C ...........|
00000010  00 00 00 00 20 00 80 00  60 28 00 40 01 00 02 00  |.... ...` + "`" + `(.@....|
00000020  00 40 00 00 68 8e 80 6e  75 44                    |.@..h..nuD|

type 1074 GPS MSM4
stationID 1, epoch time 2, multiple message, IODS 3
2 satellites, 3 signal types
1 Satellites
 8 {9.10ms}
1 Signals
 8 11 {12, lock 14, ambiguity true, cnr 15}
`

	const wantIncompleteMSM4 = `message type 1074, frame length 42
00000000  d3 04 32 43 20 01 00 00  00 04 00 00 08 00 00 00  |..2C ...........|
00000010  00 00 00 00 20 00 80 00  60 28 00 40 01 00 02 00  |.... ...` + "`" + `(.@....|
00000020  00 40 00 00 68 8e 80 6e  75 44                    |.@..h..nuD|

type 1074 GPS MSM4
stationID 1, epoch time 2, multiple message, IODS 3
2 satellites, 3 signal types
0 Satellites
0 Signals
`

	// A message containing an MSM4 or an MSM7 has a date attached.
	// Use this one.
	utcTime := time.Date(2023, time.February, 14, 1, 2, 3, int(4*time.Millisecond), utils.LocationUTC)

	// completeMessage has a header, satellites and Signals.
	msm4 := createMSM4()
	completeMSM4Message := createRTCMWithMSM4(msm4, utcTime)

	wantCompleteMSM4 := resultTemplateMSM4Complete

	// The MSM4 within incompleteMessage has just a header
	incompleteMSM4 := createMSM4()
	incompleteMSM4.Satellites = nil
	incompleteMSM4.Signals = nil

	incompleteMessage := NewMessage(utils.MessageTypeMSM4GPS, "", testdata.MessageType1074)
	incompleteMessage.Readable = incompleteMSM4

	var testData = []struct {
		description string
		message     *Message
		want        string
	}{
		{"complete MSM4", completeMSM4Message, wantCompleteMSM4},
		{"incomplete MSM4", incompleteMessage, wantIncompleteMSM4},
	}

	for _, td := range testData {
		got := td.message.String()

		if td.want != got {
			t.Errorf("%s\n%s", td.description, diff.Diff(td.want, got))
		}
	}
}

// TestCopy checks that Copy copies a message.
func TestCopy(t *testing.T) {

	const wantType = utils.MessageTypeMSM4QZSS
	const wantWarning = "a warning"
	const wantValid = false
	const wantComplete = false
	const wantCRCValid = false
	var wantUTCTime *time.Time = nil
	var wantReadable interface{} = nil
	wantBitstream := testdata.UnhandledMessageType1024

	firstMessage := NewMessage(wantType, wantWarning, wantBitstream)

	message := firstMessage.Copy()

	if wantType != message.MessageType {
		t.Errorf("want %d got %d", wantType, message.MessageType)
	}

	if wantWarning != message.ErrorMessage {
		t.Errorf("want %s got %s", wantWarning, message.ErrorMessage)
	}

	// Can't compare the bitstreams so convert them to strings.
	want := string(wantBitstream)
	got := string(message.RawData)
	if want != got {
		t.Errorf("want %s got %s", want, got)
	}

	// Check the fields that should never be set by Copy

	if wantUTCTime != message.UTCTime {
		t.Errorf("want %v got %v", wantUTCTime, message.UTCTime)
	}

	if wantReadable != message.Readable {
		t.Errorf("want %v got %v", wantReadable, message.Readable)
	}
}

// TestDispayable checks the displayable function.
func TestDispayable(t *testing.T) {
	var testData = []struct {
		messageType int
		want        bool
	}{
		{utils.NonRTCMMessage, false},
		{1005, true},
		{1076, false},
		{1074, true},
		{1077, true},
		{1107, true},
		{1116, false},
		{1117, true},
		{1118, false},
		{1127, true},
		{1134, true},
		{1137, true},
		{1136, false},
		{1137, true},
		{1138, false},
	}
	for _, td := range testData {
		message := NewMessage(td.messageType, "", nil)
		got := message.displayable()
		if got != td.want {
			t.Errorf("%d: want %v, got %v", td.messageType, td.want, got)
		}
	}
}

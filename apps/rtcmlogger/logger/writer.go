// Package logger implements a daily-rotating writer for the raw RTCM
// message stream, matching the data retention rules GNSS post-processing
// tooling expects: one file per calendar day, no partial-day files left
// lying around once the next day's file exists.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/goblimey/go-tools/clock"
	"github.com/goblimey/go-tools/dailylogger"

	"github.com/goblimey/rtcm3codec/apps/rtcmlogger/config"
)

// Writer satisfies the io.Writer interface and writes data (presumed to
// be RTCM messages) to a log file.  It uses the daily logger so there is
// a separate log file produced each day with a datestamped name, for
// example for the 31st January 2020 the log file is
// "data.2020-01-31.rtcm3".
//
// On the first write of a new day the writer pushes any log file left
// over from a previous day into the directory named by
// CFG.DirectoryForOldMessageLogs, creating it if necessary.  Dates and
// times are in local time.  Logging is disabled for a few seconds either
// side of midnight so that a block of messages spanning two days never
// gets split awkwardly across files.
type Writer struct {
	clock        clock.Clock // may be a fake during testing.
	logWriter    *dailylogger.Writer
	pushing      bool
	logDirectory string
	mutex        *sync.Mutex

	// CFG supplies the destination for pushed-aside old log files.  A nil
	// CFG disables pushing - the writer just keeps writing to the daily
	// log.
	CFG *config.Config

	// YearOfLastWrite, MonthOfLastWrite and DayOfLastWrite record the
	// date of the last successful write so Write can detect the first
	// write of a new day and trigger the push of yesterday's log.
	YearOfLastWrite  int
	MonthOfLastWrite time.Month
	DayOfLastWrite   int
}

// Start logging at 00:00:05.
const startOfDayHour = 0
const startOfDayMinute = 0
const startOfDaySecond = 5

// Stop logging at 23:59:55.
const endOfDayHour = 23
const endOfDayMinute = 59
const endOfDaySecond = 55

// subDirectoryForOldLogs is used when CFG doesn't name a destination.
const subDirectoryForOldLogs = "data.ready"

// This is a compile-time check that Writer implements the io.Writer interface.
var _ io.Writer = (*Writer)(nil)

// New creates a Writer with a system clock and returns it as an io.Writer.
func New(logDirectory string, cfg *config.Config) io.Writer {
	var m sync.Mutex
	systemClock := clock.NewSystemClock()
	writer := NewRTCMWriter(systemClock, logDirectory, &m)
	writer.CFG = cfg
	return writer
}

// NewRTCMWriter creates a Writer and returns it.  It's called by New and
// can be called directly by tests that need to supply a fake clock.
func NewRTCMWriter(c clock.Clock, logDirectory string, mutex *sync.Mutex) *Writer {
	logWriter := dailylogger.New(logDirectory, "data.", ".rtcm3")
	return &Writer{
		clock:        c,
		logWriter:    logWriter,
		pushing:      true,
		logDirectory: logDirectory,
		mutex:        mutex,
	}
}

// Write writes the buffer to the daily log file.  On the first write of
// a calendar day it pushes the previous day's log file (if any) aside
// before writing.
func (w *Writer) Write(buffer []byte) (n int, err error) {
	now := w.clock.Now()

	if !shouldBeLogging(now) {
		w.pushing = true
		// We don't log anything but we return the buffer length so the
		// caller doesn't think there has been an error.
		return len(buffer), nil
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.pushing && w.isNewDay(now) {
		if w.CFG != nil {
			w.pushOldLogs(w.logDirectory, now)
		}
		w.YearOfLastWrite = now.Year()
		w.MonthOfLastWrite = now.Month()
		w.DayOfLastWrite = now.Day()
		w.pushing = false
	}

	return w.logWriter.Write(buffer)
}

// isNewDay reports whether now falls on a different calendar day than
// the last recorded write.
func (w *Writer) isNewDay(now time.Time) bool {
	return now.Year() != w.YearOfLastWrite ||
		now.Month() != w.MonthOfLastWrite ||
		now.Day() != w.DayOfLastWrite
}

// getEndOfDay gets the time that we stop logging today, in now's timezone.
func getEndOfDay(now time.Time) time.Time {
	location := now.Location()
	return time.Date(now.Year(), now.Month(), now.Day(),
		endOfDayHour, endOfDayMinute, endOfDaySecond, 0, location)
}

// getStartOfDay gets the time that we start logging today, in now's timezone.
func getStartOfDay(now time.Time) time.Time {
	location := now.Location()
	return time.Date(now.Year(), now.Month(), now.Day(),
		startOfDayHour, startOfDayMinute, startOfDaySecond, 0, location)
}

// shouldBeLogging returns true if now is strictly between start of day
// and end of day.
func shouldBeLogging(now time.Time) bool {
	return getStartOfDay(now).Before(now) && getEndOfDay(now).After(now)
}

// getTodaysLogFilename gets the name of today's logfile, for example
// "data.2020-02-14.rtcm3".
func getTodaysLogFilename(now time.Time) string {
	return fmt.Sprintf("data.%04d-%02d-%02d.rtcm3",
		now.Year(), int(now.Month()), now.Day())
}

// pushOldLogs searches logDirectory and pushes every plain file except
// today's log file into the directory named by CFG.DirectoryForOldMessageLogs
// (or subDirectoryForOldLogs if CFG doesn't specify one).
func (w *Writer) pushOldLogs(logDirectory string, now time.Time) {
	logFilename := getTodaysLogFilename(now)

	files, err := os.ReadDir(logDirectory)
	if err != nil {
		log.Printf("pushOldLogs: cannot open logging directory %s - %v", logDirectory, err)
		return
	}

	destination := subDirectoryForOldLogs
	if w.CFG != nil && len(w.CFG.DirectoryForOldMessageLogs) > 0 {
		destination = w.CFG.DirectoryForOldMessageLogs
	}

	if err := os.MkdirAll(destination, os.ModePerm); err != nil {
		log.Printf("pushOldLogs: cannot create directory %s - %v", destination, err)
		return
	}

	for _, fileInfo := range files {
		if fileInfo.Name() == logFilename || fileInfo.IsDir() {
			continue
		}
		pushLogfile(logDirectory, destination, fileInfo.Name())
	}
}

// pushLogfile moves logFilename from logDirectory into destination.
func pushLogfile(logDirectory, destination, logFilename string) {
	logFilePath := logDirectory + "/" + logFilename
	newLogFilePath := destination + "/" + logFilename
	if err := os.Rename(logFilePath, newLogFilePath); err != nil {
		log.Printf("pushLogfile: warning - failed to move logfile %s to %s - %v",
			logFilename, newLogFilePath, err)
	}
}

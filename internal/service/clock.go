package service

import "time"

// timeNow is swapped in unit tests to pin the current week.
var timeNow = time.Now

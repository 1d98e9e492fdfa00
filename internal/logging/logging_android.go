//go:build android

package logging

import (
	"os"
	"unsafe"
)

// #cgo LDFLAGS: -llog
// #include <android/log.h>
// #include <stdlib.h>
import "C"

func logMsg(prio Priority, msg string) {
	ctag := C.CString(LogTag)
	cstr := C.CString(msg)
	C.__android_log_write(C.int(prio), ctag, cstr)
	C.free(unsafe.Pointer(ctag))
	C.free(unsafe.Pointer(cstr))
	if prio == PriorityFatal {
		os.Exit(1)
	}
}

func Sync() {}

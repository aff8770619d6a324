package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"
	"unsafe"

	"github.com/zeebo/bitstream"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"github.com/zeebo/mon/monhandler"
	"github.com/zeebo/pcg"
	"golang.org/x/sys/unix"
)

var (
	words  = flag.Int("words", 1<<20, "number of 64 bit words in the stream")
	passes = flag.Int("passes", 10, "number of write+read passes")
	wait   = flag.Bool("wait", false, "wait for ctrl+c after running (stats at :8080)")

	rng pcg.T
)

func stats() {
	defer fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	mon.Times(func(name string, state *mon.State) bool {
		sum, avg := state.Average()
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n",
			name, state.Total(), time.Duration(sum), time.Duration(avg))
		return true
	})
}

func main() {
	flag.Parse()

	defer stats()
	go http.ListenAndServe(":8080", monhandler.Handler{})

	if err := run(); err != nil {
		log.Fatalf("%+v", err)
	}

	if *wait {
		fmt.Println("done. waiting for ctrl+c...")
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT)
		<-ch
		fmt.Println()
	}
}

func run() error {
	fh, err := os.CreateTemp("", "bitstream-check-*")
	if err != nil {
		return errs.Wrap(err)
	}
	defer fh.Close()
	defer os.Remove(fh.Name())

	// round the mapping up to the next page
	pageSize := int64(unix.Getpagesize())
	size := (int64(*words)*8 + pageSize - 1) / pageSize * pageSize

	if err := fh.Truncate(size); err != nil {
		return errs.Wrap(err)
	}

	mapped, err := unix.Mmap(int(fh.Fd()), 0, int(size),
		unix.PROT_WRITE|unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return errs.Wrap(err)
	}
	defer unix.Munmap(mapped)

	buf := unsafe.Slice((*uint64)(unsafe.Pointer(&mapped[0])), *words)

	for pass := 0; pass < *passes; pass++ {
		if err := checkPass(buf); err != nil {
			return errs.Wrap(err)
		}
		fmt.Printf("pass %d ok\n", pass)
	}

	return nil
}

type field struct {
	val   uint64
	width uint
}

var (
	writeThunk  mon.Thunk
	readThunk   mon.Thunk
	randomThunk mon.Thunk
)

func checkPass(buf []uint64) (err error) {
	// keep one trailing word free for the cursor window
	budget := uint64(len(buf)-2) * 64

	var fields []field
	for total := uint64(0); total+64 <= budget; {
		width := uint(rng.Uint32n(65))
		fields = append(fields, field{rng.Uint64() & (1<<width - 1), width})
		total += uint64(width)
	}

	timer := writeThunk.Start()
	w := bitstream.NewWriter(buf)
	for _, f := range fields {
		w.Write(f.val, f.width)
	}
	timer.Stop(&err)

	timer = readThunk.Start()
	r := bitstream.NewReader(buf)
	for _, f := range fields {
		if got := r.Read(f.width); got != f.val {
			err = errs.New("mismatch: got %x want %x width %d", got, f.val, f.width)
			break
		}
	}
	timer.Stop(&err)
	if err != nil {
		return err
	}

	// verify again through the random access path, which re-reads
	// memory on every field instead of going through a cursor.
	timer = randomThunk.Start()
	off := uint64(0)
	for _, f := range fields {
		if got := bitstream.ExtractAt(buf, off, f.width); got != f.val {
			err = errs.New("random access mismatch: got %x want %x off %d width %d",
				got, f.val, off, f.width)
			break
		}
		off += uint64(f.width)
	}
	timer.Stop(&err)

	return err
}

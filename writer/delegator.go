package writer

import "context"

// Delegator hands out writers keyed by output file and flushes them through a
// sink when generation completes. A file's writer is created on first use and
// reused for every later request, so all contributions to one file land in a
// single buffer.
type Delegator struct {
	sink    Sink
	writers map[string]*Writer
	order   []string
}

// NewDelegator creates a delegator flushing through sink.
func NewDelegator(sink Sink) *Delegator {
	return &Delegator{sink: sink, writers: make(map[string]*Writer)}
}

// Writer returns the writer for filename, creating it on first use.
func (d *Delegator) Writer(filename string) *Writer {
	if w, ok := d.writers[filename]; ok {
		return w
	}
	w := New(filename)
	d.writers[filename] = w
	d.order = append(d.order, filename)
	return w
}

// Filenames returns the files in first-use order.
func (d *Delegator) Filenames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Flush finishes every writer and hands its content to the sink, in first-use
// order. The first failure aborts the flush; files already written stay
// written, files not yet flushed are never touched.
func (d *Delegator) Flush(ctx context.Context) error {
	for _, filename := range d.order {
		content, err := d.writers[filename].Finish()
		if err != nil {
			return err
		}
		if err := d.sink.WriteFile(ctx, filename, []byte(content)); err != nil {
			return err
		}
	}
	return nil
}

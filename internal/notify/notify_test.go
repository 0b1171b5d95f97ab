package notify_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vunamdddddds/bookstore/internal/catalog"
	"github.com/vunamdddddds/bookstore/internal/notify"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestMember_Notify(t *testing.T) {
	t.Run("greets member with the book", func(t *testing.T) {
		var out bytes.Buffer
		m := notify.NewMember("Alice", &out)

		err := m.Notify(catalog.NewItem("Effective Java", "Joshua Bloch", 2008))

		require.NoError(t, err)
		assert.Equal(t, "Hello Alice, new book added: Effective Java by Joshua Bloch (2008)\n", out.String())
	})

	t.Run("reports write failures", func(t *testing.T) {
		m := notify.NewMember("Bob", failingWriter{})

		err := m.Notify(catalog.NewItem("x", "y", 1))

		assert.EqualError(t, err, "disk full")
	})

	t.Run("members are notified in registration order", func(t *testing.T) {
		var out bytes.Buffer
		cat := catalog.New()
		require.NoError(t, cat.AddListener(notify.NewMember("Alice", &out)))
		require.NoError(t, cat.AddListener(notify.NewMember("Bob", &out)))

		require.NoError(t, cat.Add(catalog.NewItem("Clean Code", "Robert C. Martin", 2008)))

		assert.Equal(t,
			"Hello Alice, new book added: Clean Code by Robert C. Martin (2008)\n"+
				"Hello Bob, new book added: Clean Code by Robert C. Martin (2008)\n",
			out.String())
	})

	t.Run("failing member does not block the next one", func(t *testing.T) {
		var out bytes.Buffer
		cat := catalog.New()
		require.NoError(t, cat.AddListener(notify.NewMember("Alice", failingWriter{})))
		require.NoError(t, cat.AddListener(notify.NewMember("Bob", &out)))

		err := cat.Add(catalog.NewItem("x", "y", 1))

		assert.ErrorIs(t, err, catalog.ErrListenerFailed)
		assert.Equal(t, "Hello Bob, new book added: x by y (1)\n", out.String())
	})
}

func TestLogListener_Notify(t *testing.T) {
	var logs bytes.Buffer
	l := notify.NewLogListener(slog.New(slog.NewTextHandler(&logs, nil)))
	item := catalog.NewItem("Design Patterns", "Erich Gamma", 1994)

	require.NoError(t, l.Notify(item))

	out := logs.String()
	assert.Contains(t, out, "book added")
	assert.Contains(t, out, `name="Design Patterns"`)
	assert.Contains(t, out, "year=1994")
	assert.Contains(t, out, "id="+item.ID())
}

func TestRecorder(t *testing.T) {
	cat := catalog.New()
	rec := &notify.Recorder{}
	require.NoError(t, cat.AddListener(rec))
	a := catalog.NewItem("a", "", 1)
	b := catalog.NewItem("b", "", 2)

	require.NoError(t, cat.Add(a))
	require.NoError(t, cat.Add(b))

	assert.Equal(t, 2, rec.Count())
	assert.Equal(t, []*catalog.Item{a, b}, rec.Items)
}

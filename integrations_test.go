package smithygen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinIntegrationsRegistered(t *testing.T) {
	c, _ := newTestContext(t, restXMLTraits())

	var names []string
	for _, in := range c.Integrations() {
		names = append(names, in.Name)
	}
	assert.Equal(t, []string{"AwsSigV4", "AwsProtocol", "AwsRetry"}, names)
}

func TestIntegrationOrdering(t *testing.T) {
	c, _ := newTestContext(t, restXMLTraits())

	var order []string
	record := func(name string, priority int) {
		c.Register(Integration{
			Name:     name,
			Priority: priority,
			Pre: func(*Context) error {
				order = append(order, name)
				return nil
			},
		})
	}
	record("a", 10)
	record("b", 50)
	record("c", 50)
	record("d", 0)

	require.NoError(t, c.runPreHooks())

	// Priority descending; the tie between b and c keeps registration order.
	assert.Equal(t, []string{"b", "c", "a", "d"}, order)
}

func TestIntegrationFailureAborts(t *testing.T) {
	c, _ := newTestContext(t, restXMLTraits())

	boom := errors.New("boom")
	c.Register(Integration{
		Name:     "failing",
		Priority: 99,
		Pre:      func(*Context) error { return boom },
	})
	laterRan := false
	c.Register(Integration{
		Name:     "later",
		Priority: 5,
		Pre: func(*Context) error {
			laterRan = true
			return nil
		},
	})

	err := c.runPreHooks()
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "integration failing")
	assert.False(t, laterRan)
}

func TestPostHooksRunAfterGeneration(t *testing.T) {
	c, _ := newTestContext(t, restXMLTraits())

	var sawFiles []string
	c.Register(Integration{
		Name:     "inspect",
		Priority: 1,
		Post: func(ctx *Context) error {
			sawFiles = ctx.Files.Filenames()
			return nil
		},
	})

	require.NoError(t, c.Generate(context.Background()))
	assert.Contains(t, sawFiles, "itemService_client.u")
}

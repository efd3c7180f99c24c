// SPDX-License-Identifier: MIT
// Package registry_test verifies protobuf messages are copied with proto.Clone.
package registry_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/replica/registry"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Envelope struct {
	Meta *structpb.Struct
	Sent *timestamppb.Timestamp
}

func TestCopy_ProtoMessages(t *testing.T) {
	meta, err := structpb.NewStruct(map[string]any{"kind": "order", "n": 2})
	require.NoError(t, err)
	env := &Envelope{Meta: meta, Sent: timestamppb.New(time.Unix(1700000000, 0))}

	r := registry.New(registry.WithStructWalking())
	cp, err := registry.Copy(r, env)
	require.NoError(t, err)
	require.True(t, proto.Equal(env.Meta, cp.Meta))
	require.True(t, proto.Equal(env.Sent, cp.Sent))
	require.NotSame(t, env.Meta, cp.Meta)

	cp.Meta.Fields["kind"] = structpb.NewStringValue("refund")
	cp.Sent.Seconds++
	require.Equal(t, "order", env.Meta.Fields["kind"].GetStringValue())
	require.Equal(t, int64(1700000000), env.Sent.GetSeconds())
}

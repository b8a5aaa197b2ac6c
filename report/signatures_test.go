// Copyright 2025 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var syncTopic = common.HexToHash("0x1c411e9a96e071241c2f21f7726b17ae89e3cab4c78be50e062b03a9fffbbad1")

func TestSignatureRegistryDefaults(t *testing.T) {
	r := NewSignatureRegistry()

	require.Equal(t, 2, r.Len())
	require.Equal(t, "Transfer(address,address,uint256)", r.Name([]common.Hash{TransferTopic}))
	require.Equal(t, "Approval(address,address,uint256)", r.Name([]common.Hash{ApprovalTopic, {}}))
}

func TestSignatureRegistryFallbacks(t *testing.T) {
	r := NewSignatureRegistry()

	require.Equal(t, UnknownEvent, r.Name(nil))
	require.Equal(t, UnknownEvent, r.Name([]common.Hash{}))

	name := r.Name([]common.Hash{syncTopic})
	require.Equal(t, "Event(0x1c411e9a...)", name)
	require.True(t, strings.HasPrefix(syncTopic.Hex(), strings.TrimSuffix(strings.TrimPrefix(name, "Event("), "...)")))
}

func TestSignatureRegistryRegister(t *testing.T) {
	r := NewSignatureRegistry()

	require.Equal(t, TransferTopic, r.Register(TransferSignature))
	require.Equal(t, syncTopic, r.Register("Sync(uint112, uint112)"))
	require.Equal(t, "Sync(uint112,uint112)", r.Name([]common.Hash{syncTopic}))
	require.Equal(t, 3, r.Len())
}

func TestLoadSignatureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signatures.yaml")
	content := `signatures:
  - Sync(uint112,uint112)
  - Swap(address,uint256,uint256,uint256,uint256,address)
topics:
  "0xe1fffcc4923d04b559f4d29a8bfc6cda04eb5b0d3c460751c2402c5c5cc9109c": Deposit(address,uint256)
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r := NewSignatureRegistry()
	require.NoError(t, r.LoadSignatureFile(path))

	require.Equal(t, 5, r.Len())
	require.Equal(t, "Sync(uint112,uint112)", r.Name([]common.Hash{syncTopic}))
	require.Equal(t, "Swap(address,uint256,uint256,uint256,uint256,address)",
		r.Name([]common.Hash{common.HexToHash("0xd78ad95fa46c994b6551d0da85fc275fe613ce37657fb8d5e3d130840159d822")}))
	require.Equal(t, "Deposit(address,uint256)",
		r.Name([]common.Hash{common.HexToHash("0xe1fffcc4923d04b559f4d29a8bfc6cda04eb5b0d3c460751c2402c5c5cc9109c")}))
}

func TestLoadSignatureFileErrors(t *testing.T) {
	dir := t.TempDir()
	r := NewSignatureRegistry()

	require.Error(t, r.LoadSignatureFile(filepath.Join(dir, "missing.yaml")))

	malformed := filepath.Join(dir, "malformed.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("signatures: [unterminated"), 0o600))
	require.Error(t, r.LoadSignatureFile(malformed))

	badTopic := filepath.Join(dir, "bad_topic.yaml")
	require.NoError(t, os.WriteFile(badTopic, []byte("topics:\n  \"0x1234\": Short()\n"), 0o600))
	require.ErrorContains(t, r.LoadSignatureFile(badTopic), "invalid topic")
}

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
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"gopkg.in/yaml.v3"
)

const UnknownEvent = "Unknown Event"

var (
	TransferSignature = "Transfer(address,address,uint256)"
	ApprovalSignature = "Approval(address,address,uint256)"

	TransferTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
	ApprovalTopic = common.HexToHash("0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925")
)

// SignatureRegistry maps an event's first topic to its canonical signature.
// It is safe for concurrent use.
type SignatureRegistry struct {
	mu    sync.RWMutex
	names map[common.Hash]string
}

// NewSignatureRegistry returns a registry preloaded with the ERC-20
// Transfer and Approval events.
func NewSignatureRegistry() *SignatureRegistry {
	r := &SignatureRegistry{names: map[common.Hash]string{}}
	r.RegisterHash(TransferTopic, TransferSignature)
	r.RegisterHash(ApprovalTopic, ApprovalSignature)
	return r
}

// Register adds a canonical event signature such as
// "Swap(address,uint256,uint256,uint256,uint256,address)" and returns its topic.
func (r *SignatureRegistry) Register(signature string) common.Hash {
	signature = strings.Join(strings.Fields(signature), "")
	topic := crypto.Keccak256Hash([]byte(signature))
	r.RegisterHash(topic, signature)
	return topic
}

func (r *SignatureRegistry) RegisterHash(topic common.Hash, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[topic] = name
}

func (r *SignatureRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Name resolves the event name from a log's topics. It never fails: logs
// without topics are UnknownEvent and unregistered topics get a placeholder
// carrying the topic prefix.
func (r *SignatureRegistry) Name(topics []common.Hash) string {
	if len(topics) == 0 {
		return UnknownEvent
	}

	r.mu.RLock()
	name, ok := r.names[topics[0]]
	r.mu.RUnlock()

	if ok {
		return name
	}

	return fmt.Sprintf("Event(%s...)", topics[0].Hex()[:10])
}

type signatureFile struct {
	Signatures []string          `yaml:"signatures"`
	Topics     map[string]string `yaml:"topics"`
}

// LoadSignatureFile reads additional events from a YAML file of the form
//
//	signatures:
//	  - Sync(uint112,uint112)
//	topics:
//	  "0x1c411e9a96e071241c2f21f7726b17ae89e3cab4c78be50e062b03a9fffbbad1": Sync(uint112,uint112)
func (r *SignatureRegistry) LoadSignatureFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("can't read signature file: %w", err)
	}

	var file signatureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("can't parse signature file %s: %w", path, err)
	}

	for _, signature := range file.Signatures {
		r.Register(signature)
	}

	for topic, name := range file.Topics {
		if !isTopic(topic) {
			return fmt.Errorf("invalid topic %q in %s", topic, path)
		}
		r.RegisterHash(common.HexToHash(topic), name)
	}

	return nil
}

func isTopic(s string) bool {
	b, err := hexutil.Decode(s)
	return err == nil && len(b) == common.HashLength
}

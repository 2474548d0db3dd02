/*
Copyright 2025 Flant JSC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pwgen

import "crypto/rand"

// dnsLabelChars are the characters allowed anywhere in a DNS-1123 label.
const dnsLabelChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// LowerAlphaNum returns a string usable as a suffix in DNS-1123 object names.
func LowerAlphaNum(length int) string {
	buf := make([]byte, length)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = dnsLabelChars[int(b)%len(dnsLabelChars)]
	}
	return string(buf)
}

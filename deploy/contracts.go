package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

// Directories of the compiled contracts in the file system passed to
// ReadContracts. Each directory contains contract.nef and manifest.json files
// produced by `neo-go contract compile`.
const (
	RelayDir   = "relay"
	DepositDir = "deposit"
	SampleDir  = "sample"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// ReadContracts reads all contracts required by Deploy from the given file
// system and puts them into prm.
func ReadContracts(fsys fs.FS, prm *Prm) error {
	for _, x := range []struct {
		dir string
		dst *CommonDeployPrm
	}{
		{RelayDir, &prm.Relay},
		{DepositDir, &prm.Deposit},
		{SampleDir, &prm.Sample.Common},
	} {
		c, err := ReadContract(fsys, x.dir)
		if err != nil {
			return fmt.Errorf("read contract %s: %w", x.dir, err)
		}

		*x.dst = c
	}

	return nil
}

// ReadContract reads compiled contract from the directory of the given file
// system.
func ReadContract(fsys fs.FS, dir string) (CommonDeployPrm, error) {
	var c CommonDeployPrm

	// fs.FS always uses "/", so filepath.Join() is not applicable.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

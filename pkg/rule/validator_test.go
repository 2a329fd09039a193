package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/cotishq/cloudnest/pkg/rule"
)

type folderRequest struct {
	Name    string `rule:"required"`
	OwnerID string `rule:"required,email"`
}

func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

func TestValidateStruct(t *testing.T) {
	valid := folderRequest{Name: "documents", OwnerID: "alice@example.com"}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	missingName := folderRequest{Name: "", OwnerID: "alice@example.com"}

	err = rule.ValidateStruct(missingName)
	if err == nil {
		t.Error("Expected error for struct missing name, got nil")
	}

	badOwner := folderRequest{Name: "documents", OwnerID: "not-an-email"}

	err = rule.ValidateStruct(badOwner)
	if err == nil {
		t.Error("Expected error for struct with invalid owner, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	err := rule.ValidateVar("alice@example.com", "required,email")
	if err != nil {
		t.Errorf("Expected no error for valid email, got %v", err)
	}

	err = rule.ValidateVar("invalid-email", "required,email")
	if err == nil {
		t.Error("Expected error for invalid email, got nil")
	}

	err = rule.ValidateVar(8080, "min=1,max=65535")
	if err != nil {
		t.Errorf("Expected no error for valid port, got %v", err)
	}

	err = rule.ValidateVar(0, "min=1,max=65535")
	if err == nil {
		t.Error("Expected error for port below range, got nil")
	}
}

func TestRegisterValidation(t *testing.T) {
	err := rule.RegisterValidation("no_slash", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		for _, r := range str {
			if r == '/' {
				return false
			}
		}

		return true
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	err = rule.ValidateVar("report.pdf", "no_slash")
	if err != nil {
		t.Errorf("Expected no error for plain file name, got %v", err)
	}

	err = rule.ValidateVar("a/b.pdf", "no_slash")
	if err == nil {
		t.Error("Expected error for name containing slash, got nil")
	}
}

func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("node_name", "required,min=1,max=512")

	err := rule.ValidateVar("notes", "node_name")
	if err != nil {
		t.Errorf("Expected no error for valid name with alias, got %v", err)
	}

	err = rule.ValidateVar("", "node_name")
	if err == nil {
		t.Error("Expected error for empty name with alias, got nil")
	}
}

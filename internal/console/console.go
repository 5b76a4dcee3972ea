// Package console is the text front end of FoodieBran.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/brandon-nx/Food-Ordering-System/internal/app"
	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

const separator = "-----------------------------------"

// Console reads commands line by line and writes prompts and results.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	app      *app.App
	currency string
}

func New(in io.Reader, out io.Writer, a *app.App) *Console {
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		app:      a,
		currency: a.Config.App.Currency,
	}
}

// Run shows the main menu until the user exits, input ends or ctx is
// cancelled. Customers are saved on the way out.
func (c *Console) Run(ctx context.Context) error {
	err := c.mainLoop(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		err = nil
	}

	if saveErr := c.app.SaveCustomers(); saveErr != nil {
		c.println("Warning: customers could not be saved.")
	}
	return err
}

func (c *Console) mainLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.displayMainMenu()
		option, err := c.readInt("")
		if err != nil {
			return err
		}
		c.println(separator)

		switch option {
		case 1:
			err = c.registerMember()
		case 2:
			err = c.placeOrder(ctx)
		case 3:
			err = c.orderHistory()
		case 4:
			err = c.adminLogin()
		case 5:
			c.println("Thank you for using FoodieBran. Goodbye !")
			c.println(separator)
			return nil
		default:
			c.println("Invalid option. Please try again (1-5).")
			c.println(separator)
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) displayMainMenu() {
	c.println("Welcome to FoodieBran!")
	c.println(separator)
	c.displaySpecialOffers()
	c.println("1. Register as a New Member to get Exclusive Discount")
	c.println("2. Place Food Order")
	c.println("3. View Order History")
	c.println("4. Admin Login")
	c.println("5. Exit")
	c.println(separator)
	c.printf("Enter your choice: ")
}

func (c *Console) displaySpecialOffers() {
	c.println("Current Special Offers:")
	offers := c.app.SpecialOffers()
	if len(offers) == 0 {
		c.println("No special offers available at the moment.")
	}
	for _, o := range offers {
		c.printf("- %s: %s\n", o.Restaurant, o.Offer.Description)
	}
	c.println(separator)
}

func (c *Console) money(amount decimal.Decimal) string {
	return models.FormatMoney(c.currency, amount)
}

func (c *Console) println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// readLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned before io.EOF.
func (c *Console) readLine(prompt string) (string, error) {
	if prompt != "" {
		c.printf("%s", prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt re-prompts until the line holds an integer.
func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return n, nil
		}
		c.println(separator)
		c.println("Invalid input. Please enter a number.")
		c.println(separator)
		if prompt == "" {
			prompt = "Enter your choice: "
		}
	}
}

// readChoice re-prompts until the integer is within [lo, hi].
func (c *Console) readChoice(prompt string, lo, hi int) (int, error) {
	for {
		n, err := c.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if n >= lo && n <= hi {
			return n, nil
		}
		c.println("Invalid choice, please try again.")
	}
}

// readDecimal re-prompts until the line holds a number.
func (c *Console) readDecimal(prompt string) (decimal.Decimal, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, parseErr := models.ParseMoney(strings.TrimSpace(line))
		if parseErr == nil {
			return d, nil
		}
		c.println("Invalid input. Please enter a valid amount.")
	}
}

// readLetter reads a single letter answer, upper-cased.
func (c *Console) readLetter(prompt string) (string, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(line)), nil
}

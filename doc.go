// Package procedure renders labeled, colorized progress lines for terminal
// programs.
//
// An operation is wrapped with Proceed. The work function receives a
// *Progress and moves it forward; the line is redrawn in place with a
// leading carriage return and replaced by a final success or failure line
// once work returns.
//
//	n, err := procedure.Proceed("Download", "example_file.jpg",
//	    func(p *procedure.Progress) (procedure.Outcome[int64], error) {
//	        for i := 0; i < 100; i++ {
//	            if err := p.Increment(1); err != nil {
//	                return procedure.Outcome[int64]{}, err
//	            }
//	        }
//	        return procedure.Outcome[int64]{Value: 262144, Display: "example_file.jpg [256 KiB]"}, nil
//	    })
//
// Output:
//
//	    Download [  0%] example_file.jpg
//	    Download [100%] example_file.jpg [256 KiB]
//
// Success, Error, Warning and Info print single status lines without a
// percentage.
package procedure
